package appointment

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salonq/internal/audit"
	domain "github.com/BruksfildServices01/salonq/internal/domain/appointment"
	"github.com/BruksfildServices01/salonq/internal/metrics"
	"github.com/BruksfildServices01/salonq/internal/models"
)

type CancelAppointment struct {
	repo   domain.Repository
	clock  domain.Clock
	audit  *audit.Dispatcher
	events EventRecorder
	log    *zap.Logger

	// missingIsNoop turns an unknown id into a silent success.
	missingIsNoop bool
}

func NewCancelAppointment(
	repo domain.Repository,
	clock domain.Clock,
	audit *audit.Dispatcher,
	events EventRecorder,
	log *zap.Logger,
	missingIsNoop bool,
) *CancelAppointment {
	return &CancelAppointment{
		repo:          repo,
		clock:         clock,
		audit:         audit,
		events:        orNoop(events),
		log:           log,
		missingIsNoop: missingIsNoop,
	}
}

// Execute returns (nil, nil) only when the id is unknown and missing ids
// are configured as a no-op.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	userID string,
	appointmentID string,
) (*models.Appointment, error) {

	var cancelled bool
	ap, err := uc.repo.Update(ctx, userID, appointmentID, func(ap *models.Appointment) (bool, error) {
		changed, err := domain.Cancel(ap, uc.clock.Now())
		cancelled = changed
		return changed, err
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) && uc.missingIsNoop {
			uc.log.Info("CancelAppointment: unknown id ignored", zap.String("appointment_id", appointmentID))
			return nil, nil
		}
		uc.log.Warn("CancelAppointment: rejected", zap.String("appointment_id", appointmentID), zap.Error(err))
		return nil, err
	}

	if !cancelled {
		return ap, nil
	}

	uc.events.AppointmentEvent(metrics.EventCancelled)
	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		UserID:   userID,
		Action:   audit.ActionAppointmentCancelled,
		Entity:   "appointment",
		EntityID: ap.ID,
	})
	uc.log.Info("CancelAppointment: cancelled", zap.String("appointment_id", ap.ID))

	return ap, nil
}
