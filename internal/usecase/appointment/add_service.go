package appointment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salonq/internal/audit"
	domain "github.com/BruksfildServices01/salonq/internal/domain/appointment"
	"github.com/BruksfildServices01/salonq/internal/metrics"
	"github.com/BruksfildServices01/salonq/internal/models"
)

type AddServiceToAppointment struct {
	repo   domain.Repository
	salons SalonReader
	clock  domain.Clock
	audit  *audit.Dispatcher
	events EventRecorder
	log    *zap.Logger
}

func NewAddServiceToAppointment(
	repo domain.Repository,
	salons SalonReader,
	clock domain.Clock,
	audit *audit.Dispatcher,
	events EventRecorder,
	log *zap.Logger,
) *AddServiceToAppointment {
	return &AddServiceToAppointment{
		repo:   repo,
		salons: salons,
		clock:  clock,
		audit:  audit,
		events: orNoop(events),
		log:    log,
	}
}

func (uc *AddServiceToAppointment) Execute(
	ctx context.Context,
	userID string,
	appointmentID string,
	serviceID string,
) (*models.Appointment, error) {

	current, err := NewGetAppointment(uc.repo).Execute(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}

	shop, err := uc.salons.GetSalon(ctx, current.SalonID)
	if err != nil {
		return nil, err
	}
	svc, ok := shop.FindService(serviceID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrServiceNotOffered, serviceID)
	}

	ap, err := uc.repo.Update(ctx, userID, appointmentID, func(ap *models.Appointment) (bool, error) {
		if err := domain.AddService(ap, svc, uc.clock.Now()); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		uc.log.Warn("AddServiceToAppointment: rejected",
			zap.String("appointment_id", appointmentID),
			zap.String("service_id", serviceID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.events.AppointmentEvent(metrics.EventServiceAdded)
	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		UserID:   userID,
		Action:   audit.ActionServiceAdded,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"service_id": svc.ID, "price": svc.Price},
	})

	return ap, nil
}
