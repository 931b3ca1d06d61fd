package appointment

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/salonq/internal/domain/appointment"
	"github.com/BruksfildServices01/salonq/internal/dto"
	"github.com/BruksfildServices01/salonq/internal/models"
)

type HistoryFilter struct {
	// Status keeps only appointments in this status when set.
	Status string
}

type ListHistory struct {
	repo  domain.Repository
	clock domain.Clock
}

func NewListHistory(repo domain.Repository, clock domain.Clock) *ListHistory {
	return &ListHistory{repo: repo, clock: clock}
}

// Execute splits the user's appointments into upcoming (open and not yet
// started, soonest first) and past (everything else, latest first).
func (uc *ListHistory) Execute(
	ctx context.Context,
	userID string,
	filter HistoryFilter,
) (*dto.AppointmentHistoryDTO, error) {

	list, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	out := &dto.AppointmentHistoryDTO{
		Upcoming: []dto.AppointmentListDTO{},
		Past:     []dto.AppointmentListDTO{},
	}

	for _, ap := range list {
		if filter.Status != "" && ap.Status != filter.Status {
			continue
		}
		row := toListDTO(ap)
		if isUpcoming(ap, now) {
			out.Upcoming = append(out.Upcoming, row)
		} else {
			out.Past = append(out.Past, row)
		}
	}

	sort.SliceStable(out.Upcoming, func(i, j int) bool {
		return startKey(out.Upcoming[i]) < startKey(out.Upcoming[j])
	})
	sort.SliceStable(out.Past, func(i, j int) bool {
		return startKey(out.Past[i]) > startKey(out.Past[j])
	})

	return out, nil
}

func isUpcoming(ap models.Appointment, now time.Time) bool {
	switch domain.Status(ap.Status) {
	case domain.StatusPending, domain.StatusConfirmed:
		return !domain.SlotStarted(ap.TimeSlot, now)
	}
	return false
}

func startKey(row dto.AppointmentListDTO) string {
	return row.Date + " " + row.StartTime
}

func toListDTO(ap models.Appointment) dto.AppointmentListDTO {
	names := make([]string, 0, len(ap.Services))
	for _, s := range ap.Services {
		names = append(names, s.Name)
	}
	return dto.AppointmentListDTO{
		ID:           ap.ID,
		SalonID:      ap.SalonID,
		EmployeeID:   ap.EmployeeID,
		Date:         ap.Date,
		StartTime:    ap.TimeSlot.StartTime,
		EndTime:      ap.TimeSlot.EndTime,
		Status:       ap.Status,
		ServiceNames: names,
		TotalAmount:  ap.TotalAmount,
	}
}
