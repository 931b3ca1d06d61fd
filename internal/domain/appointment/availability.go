package appointment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/BruksfildServices01/salonq/internal/models"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Fixed booking grid: 7 days, hourly slots from 11:00 up to 20:00.
const (
	GridDays      = 7
	GridOpenHour  = 11
	GridCloseHour = 20
	SlotLength    = time.Hour
)

func SlotID(employeeID, date, start string) string {
	return fmt.Sprintf("slot-%s-%s-%s", employeeID, date, start)
}

// GenerateSlots builds the provider's grid starting at from's calendar
// date, ordered by day then start time. IsAvailable is left false.
func GenerateSlots(employeeID string, from time.Time) []models.TimeSlot {
	perDay := GridCloseHour - GridOpenHour
	slots := make([]models.TimeSlot, 0, GridDays*perDay)

	for d := 0; d < GridDays; d++ {
		day := time.Date(from.Year(), from.Month(), from.Day()+d, 0, 0, 0, 0, from.Location())
		date := day.Format(DateLayout)

		for h := GridOpenHour; h < GridCloseHour; h++ {
			start := time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, day.Location())
			end := start.Add(SlotLength)
			slots = append(slots, models.TimeSlot{
				ID:         SlotID(employeeID, date, start.Format(TimeLayout)),
				Date:       date,
				StartTime:  start.Format(TimeLayout),
				EndTime:    end.Format(TimeLayout),
				EmployeeID: employeeID,
			})
		}
	}
	return slots
}

func FindSlot(slots []models.TimeSlot, slotID string) (models.TimeSlot, bool) {
	for _, s := range slots {
		if s.ID == slotID {
			return s, true
		}
	}
	return models.TimeSlot{}, false
}

// ===============================
// Oracles
// ===============================

type AvailabilityOracle interface {
	MarkAvailability(ctx context.Context, slots []models.TimeSlot) error
}

type Clock interface {
	Now() time.Time
}

// RandomOracle marks each slot available with probability P, independently
// on every call.
type RandomOracle struct {
	P     float64
	Float func() float64
}

func NewRandomOracle(p float64) *RandomOracle {
	return &RandomOracle{P: p, Float: rand.Float64}
}

func (o *RandomOracle) MarkAvailability(_ context.Context, slots []models.TimeSlot) error {
	for i := range slots {
		slots[i].IsAvailable = o.Float() < o.P
	}
	return nil
}

// BookedOracle marks a slot unavailable when a non-cancelled appointment
// holds it, or when it has already started.
type BookedOracle struct {
	index SlotIndex
	clock Clock
}

func NewBookedOracle(index SlotIndex, clock Clock) *BookedOracle {
	return &BookedOracle{index: index, clock: clock}
}

func (o *BookedOracle) MarkAvailability(ctx context.Context, slots []models.TimeSlot) error {
	now := o.clock.Now()
	booked := map[string]map[string]string{}

	for i := range slots {
		s := &slots[i]
		key := s.EmployeeID + "|" + s.Date

		starts, ok := booked[key]
		if !ok {
			var err error
			starts, err = o.index.BookedStarts(ctx, s.EmployeeID, s.Date)
			if err != nil {
				return err
			}
			booked[key] = starts
		}

		_, taken := starts[s.StartTime]
		s.IsAvailable = !taken && !SlotStarted(*s, now)
	}
	return nil
}

// SlotStarted reports whether s begins at or before now, read in now's
// location. Unparseable slots count as started.
func SlotStarted(s models.TimeSlot, now time.Time) bool {
	start, err := time.ParseInLocation(DateLayout+" "+TimeLayout, s.Date+" "+s.StartTime, now.Location())
	if err != nil {
		return true
	}
	return !start.After(now)
}
