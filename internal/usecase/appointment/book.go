package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salonq/internal/audit"
	domain "github.com/BruksfildServices01/salonq/internal/domain/appointment"
	"github.com/BruksfildServices01/salonq/internal/metrics"
	"github.com/BruksfildServices01/salonq/internal/models"
)

type BookAppointment struct {
	repo   domain.Repository
	salons SalonReader
	clock  domain.Clock
	audit  *audit.Dispatcher
	events EventRecorder
	log    *zap.Logger

	newID func() string
}

func NewBookAppointment(
	repo domain.Repository,
	salons SalonReader,
	clock domain.Clock,
	audit *audit.Dispatcher,
	events EventRecorder,
	log *zap.Logger,
) *BookAppointment {
	return &BookAppointment{
		repo:   repo,
		salons: salons,
		clock:  clock,
		audit:  audit,
		events: orNoop(events),
		log:    log,
		newID:  uuid.NewString,
	}
}

// Execute persists payload as a new pending appointment. Services are
// re-read from the catalog so the stored prices and total are the
// salon's current ones.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	payload *models.Appointment,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Payload shape
	// --------------------------------------------------
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	employeeID := payload.EmployeeID
	if employeeID == "" {
		employeeID = payload.TimeSlot.EmployeeID
	}
	if employeeID != payload.TimeSlot.EmployeeID {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "timeSlot", Message: "belongs to another provider"},
		}}
	}

	method := payload.PaymentMethod
	if method == "" {
		method = domain.PaymentCash
	}
	if !domain.IsPaymentMethod(method) {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "paymentMethod", Message: "must be online or cash"},
		}}
	}

	// --------------------------------------------------
	// Catalog
	// --------------------------------------------------
	shop, err := uc.salons.GetSalon(ctx, payload.SalonID)
	if err != nil {
		return nil, err
	}
	if !shop.HasEmployee(employeeID) {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "employeeId", Message: "does not work at this salon"},
		}}
	}

	services := make([]models.Service, 0, len(payload.Services))
	for _, s := range payload.Services {
		svc, ok := shop.FindService(s.ID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrServiceNotOffered, s.ID)
		}
		services = append(services, svc)
	}

	// --------------------------------------------------
	// Slot must be on the current grid and not started
	// --------------------------------------------------
	now := uc.clock.Now()
	slotID := domain.SlotID(employeeID, payload.Date, payload.TimeSlot.StartTime)
	slot, ok := domain.FindSlot(domain.GenerateSlots(employeeID, now), slotID)
	if !ok || domain.SlotStarted(slot, now) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotUnavailable, slotID)
	}
	slot.IsAvailable = true

	// --------------------------------------------------
	// Create
	// --------------------------------------------------
	ap := &models.Appointment{
		ID:            uc.newID(),
		CustomerID:    payload.CustomerID,
		SalonID:       shop.ID,
		EmployeeID:    employeeID,
		Services:      services,
		Date:          payload.Date,
		TimeSlot:      slot,
		Status:        string(domain.InitialStatus()),
		PaymentMethod: method,
		PaymentStatus: domain.PaymentStatusPending,
		TotalAmount:   models.SumServices(services),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			uc.events.AppointmentEvent(metrics.EventConflict)
			uc.log.Warn("BookAppointment: slot taken", zap.String("slot_id", slotID))
			return nil, err
		}
		uc.log.Error("BookAppointment: create failed", zap.String("slot_id", slotID), zap.Error(err))
		return nil, err
	}

	uc.events.AppointmentEvent(metrics.EventBooked)
	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		UserID:   ap.CustomerID,
		Action:   audit.ActionAppointmentBooked,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"employee_id": ap.EmployeeID,
			"date":        ap.Date,
			"start_time":  ap.TimeSlot.StartTime,
			"total":       ap.TotalAmount,
		},
	})
	uc.log.Info("BookAppointment: booked",
		zap.String("appointment_id", ap.ID),
		zap.String("slot_id", slotID),
	)

	return ap, nil
}

func validatePayload(p *models.Appointment) error {
	var fields []domain.FieldError
	if p.CustomerID == "" {
		fields = append(fields, domain.FieldError{Field: "customerId", Message: "is required"})
	}
	if p.SalonID == "" {
		fields = append(fields, domain.FieldError{Field: "salonId", Message: "is required"})
	}
	if p.Date == "" {
		fields = append(fields, domain.FieldError{Field: "date", Message: "is required"})
	}
	if p.TimeSlot.StartTime == "" {
		fields = append(fields, domain.FieldError{Field: "timeSlot", Message: "is required"})
	} else if p.Date != "" && p.TimeSlot.Date != p.Date {
		fields = append(fields, domain.FieldError{Field: "timeSlot", Message: "does not match date"})
	}
	if len(p.Services) == 0 {
		fields = append(fields, domain.FieldError{Field: "services", Message: "at least one is required"})
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
