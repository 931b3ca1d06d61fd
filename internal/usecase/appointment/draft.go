package appointment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salonq/internal/domain/appointment"
	"github.com/BruksfildServices01/salonq/internal/domain/salon"
	"github.com/BruksfildServices01/salonq/internal/models"
)

// DraftView is a draft plus its computed total.
type DraftView struct {
	domain.Draft
	TotalAmount float64 `json:"totalAmount"`
}

func viewOf(d domain.Draft) *DraftView {
	return &DraftView{Draft: d, TotalAmount: d.ComputeTotal()}
}

// BookingDraft drives the step-by-step booking screens. Drafts live only
// in memory, one per user.
type BookingDraft struct {
	registry *domain.DraftRegistry
	salons   SalonReader
	oracle   domain.AvailabilityOracle
	clock    domain.Clock
	book     *BookAppointment
	log      *zap.Logger
}

func NewBookingDraft(
	registry *domain.DraftRegistry,
	salons SalonReader,
	oracle domain.AvailabilityOracle,
	clock domain.Clock,
	book *BookAppointment,
	log *zap.Logger,
) *BookingDraft {
	return &BookingDraft{
		registry: registry,
		salons:   salons,
		oracle:   oracle,
		clock:    clock,
		book:     book,
		log:      log,
	}
}

// ======================================================
// BEGIN / READ / DISCARD
// ======================================================

func (uc *BookingDraft) Begin(ctx context.Context, userID, salonID string) (*DraftView, error) {
	if _, err := uc.salons.GetSalon(ctx, salonID); err != nil {
		return nil, err
	}
	d := uc.registry.Begin(userID, func(d *domain.Draft) {
		d.SetCustomer(userID)
		d.SetSalon(salonID)
	})
	return viewOf(d), nil
}

func (uc *BookingDraft) Get(_ context.Context, userID string) (*DraftView, error) {
	d, ok := uc.registry.Get(userID)
	if !ok {
		return nil, domain.ErrNoDraft
	}
	return viewOf(d), nil
}

func (uc *BookingDraft) Discard(_ context.Context, userID string) {
	uc.registry.Discard(userID)
}

// ======================================================
// SETTERS
// ======================================================

// SelectDate accepts a date inside the bookable window.
func (uc *BookingDraft) SelectDate(_ context.Context, userID, date string) (*DraftView, error) {
	if !uc.inWindow(date) {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "date", Message: "is outside the booking window"},
		}}
	}
	return uc.update(userID, func(d *domain.Draft) error {
		d.SelectDate(date)
		return nil
	})
}

// SelectTime looks slotID up on the grid of the chosen provider, or of
// every provider at the salon when none is chosen yet, and requires it to
// be available now.
func (uc *BookingDraft) SelectTime(ctx context.Context, userID, slotID string) (*DraftView, error) {
	current, ok := uc.registry.Get(userID)
	if !ok {
		return nil, domain.ErrNoDraft
	}

	shop, err := uc.salons.GetSalon(ctx, current.SalonID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	var (
		slot  models.TimeSlot
		found bool
	)
	for _, e := range shop.Employees {
		if current.EmployeeID != "" && e.ID != current.EmployeeID {
			continue
		}
		if slot, found = domain.FindSlot(domain.GenerateSlots(e.ID, now), slotID); found {
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotUnavailable, slotID)
	}

	candidate := []models.TimeSlot{slot}
	if err := uc.oracle.MarkAvailability(ctx, candidate); err != nil {
		return nil, err
	}
	if !candidate[0].IsAvailable {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotUnavailable, slotID)
	}

	return uc.update(userID, func(d *domain.Draft) error {
		d.SelectTime(candidate[0])
		return nil
	})
}

func (uc *BookingDraft) ToggleService(ctx context.Context, userID, serviceID string) (*DraftView, error) {
	shop, err := uc.draftSalon(ctx, userID)
	if err != nil {
		return nil, err
	}
	svc, ok := shop.FindService(serviceID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrServiceNotOffered, serviceID)
	}
	return uc.update(userID, func(d *domain.Draft) error {
		d.ToggleService(svc)
		return nil
	})
}

func (uc *BookingDraft) SetProvider(ctx context.Context, userID, employeeID string) (*DraftView, error) {
	shop, err := uc.draftSalon(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !shop.HasEmployee(employeeID) {
		return nil, fmt.Errorf("%w: %s", salon.ErrEmployeeNotFound, employeeID)
	}
	return uc.update(userID, func(d *domain.Draft) error {
		d.SetProvider(employeeID)
		return nil
	})
}

func (uc *BookingDraft) SetPaymentMethod(_ context.Context, userID, method string) (*DraftView, error) {
	if !domain.IsPaymentMethod(method) {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "paymentMethod", Message: "must be online or cash"},
		}}
	}
	return uc.update(userID, func(d *domain.Draft) error {
		d.SetPaymentMethod(method)
		return nil
	})
}

// ======================================================
// CONFIRM
// ======================================================

// Confirm validates the draft and books it. The draft is only dropped once
// the booking is stored; any failure leaves it as it was.
func (uc *BookingDraft) Confirm(ctx context.Context, userID string) (*models.Appointment, error) {
	d, ok := uc.registry.Get(userID)
	if !ok {
		return nil, domain.ErrNoDraft
	}

	payload, err := d.Confirm()
	if err != nil {
		return nil, err
	}

	ap, err := uc.book.Execute(ctx, payload)
	if err != nil {
		uc.log.Warn("ConfirmDraft: booking failed, draft kept", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	uc.registry.Discard(userID)
	return ap, nil
}

// ======================================================
// HELPERS
// ======================================================

func (uc *BookingDraft) update(userID string, fn func(d *domain.Draft) error) (*DraftView, error) {
	d, err := uc.registry.Update(userID, fn)
	if err != nil {
		return nil, err
	}
	return viewOf(d), nil
}

func (uc *BookingDraft) draftSalon(ctx context.Context, userID string) (*models.Salon, error) {
	d, ok := uc.registry.Get(userID)
	if !ok {
		return nil, domain.ErrNoDraft
	}
	return uc.salons.GetSalon(ctx, d.SalonID)
}

func (uc *BookingDraft) inWindow(date string) bool {
	now := uc.clock.Now()
	day, err := time.ParseInLocation(domain.DateLayout, date, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	last := today.AddDate(0, 0, domain.GridDays-1)
	return !day.Before(today) && !day.After(last)
}
