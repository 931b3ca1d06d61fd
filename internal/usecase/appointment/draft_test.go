package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salonq/internal/domain/appointment"
	"github.com/BruksfildServices01/salonq/internal/domain/salon"
)

func TestBookingDraft_FullFlow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	uc := e.drafts()

	v, err := uc.Begin(ctx, "u1", "1")
	require.NoError(t, err)
	assert.Equal(t, "u1", v.CustomerID)
	assert.Equal(t, "1", v.SalonID)

	_, err = uc.SelectDate(ctx, "u1", "2026-03-31")
	require.NoError(t, err)
	_, err = uc.SelectTime(ctx, "u1", "slot-emp2-2026-03-31-16:00")
	require.NoError(t, err)
	_, err = uc.ToggleService(ctx, "u1", "service1")
	require.NoError(t, err)
	v, err = uc.ToggleService(ctx, "u1", "service2")
	require.NoError(t, err)
	assert.InDelta(t, 65, v.TotalAmount, 1e-9)

	v, err = uc.SetPaymentMethod(ctx, "u1", domain.PaymentOnline)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-31", v.Date, "earlier selections kept")

	ap, err := uc.Confirm(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "emp2", ap.EmployeeID)
	assert.Equal(t, domain.PaymentOnline, ap.PaymentMethod)
	assert.InDelta(t, 65, ap.TotalAmount, 1e-9)

	_, err = uc.Get(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrNoDraft)

	list, err := e.repo.ListForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBookingDraft_ConfirmIncompleteStoresNothing(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	uc := e.drafts()

	_, err := uc.Begin(ctx, "u1", "1")
	require.NoError(t, err)
	_, err = uc.SelectDate(ctx, "u1", "2026-03-31")
	require.NoError(t, err)

	_, err = uc.Confirm(ctx, "u1")
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"timeSlot", "services"}, ve.FieldNames())

	v, err := uc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-31", v.Date)

	list, err := e.repo.ListForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBookingDraft_ConflictKeepsDraft(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	uc := e.drafts()

	_, err := uc.Begin(ctx, "u1", "1")
	require.NoError(t, err)
	_, err = uc.SelectDate(ctx, "u1", "2026-03-31")
	require.NoError(t, err)
	_, err = uc.SelectTime(ctx, "u1", "slot-emp1-2026-03-31-11:00")
	require.NoError(t, err)
	_, err = uc.ToggleService(ctx, "u1", "service1")
	require.NoError(t, err)

	// Someone else books the slot between selection and confirmation.
	_, err = e.booker().Execute(ctx, payload("u2", "emp1", "2026-03-31", "11:00", spa))
	require.NoError(t, err)

	_, err = uc.Confirm(ctx, "u1")
	require.ErrorIs(t, err, domain.ErrSlotTaken)

	v, err := uc.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, v.TimeSlot)
	assert.Len(t, v.Services, 1)
}

func TestBookingDraft_SelectTimeRules(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	uc := e.drafts()

	_, err := uc.SelectTime(ctx, "u1", "slot-emp1-2026-03-31-11:00")
	require.ErrorIs(t, err, domain.ErrNoDraft)

	_, err = uc.Begin(ctx, "u1", "1")
	require.NoError(t, err)

	_, err = uc.SelectTime(ctx, "u1", "slot-emp1-2026-03-31-21:00")
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)

	_, err = e.booker().Execute(ctx, payload("u2", "emp1", "2026-03-31", "12:00", spa))
	require.NoError(t, err)
	_, err = uc.SelectTime(ctx, "u1", "slot-emp1-2026-03-31-12:00")
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)

	_, err = uc.SetProvider(ctx, "u1", "emp2")
	require.NoError(t, err)
	_, err = uc.SelectTime(ctx, "u1", "slot-emp1-2026-03-31-13:00")
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable, "slot belongs to a different provider")
}

func TestBookingDraft_SwitchingProviderClearsTime(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	uc := e.drafts()

	_, err := uc.Begin(ctx, "u1", "1")
	require.NoError(t, err)
	_, err = uc.SelectDate(ctx, "u1", "2026-03-31")
	require.NoError(t, err)
	_, err = uc.SelectTime(ctx, "u1", "slot-emp1-2026-03-31-11:00")
	require.NoError(t, err)
	_, err = uc.ToggleService(ctx, "u1", "service1")
	require.NoError(t, err)

	v, err := uc.SetProvider(ctx, "u1", "emp2")
	require.NoError(t, err)
	assert.Nil(t, v.TimeSlot)

	_, err = uc.Confirm(ctx, "u1")
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"timeSlot"}, ve.FieldNames())
}

func TestBookingDraft_SetterValidation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	uc := e.drafts()

	_, err := uc.Begin(ctx, "u1", "404")
	require.ErrorIs(t, err, salon.ErrNotFound)

	_, err = uc.Begin(ctx, "u1", "1")
	require.NoError(t, err)

	_, err = uc.SelectDate(ctx, "u1", "2026-04-06")
	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))

	_, err = uc.SelectDate(ctx, "u1", "31/03/2026")
	assert.True(t, errors.As(err, &ve))

	_, err = uc.ToggleService(ctx, "u1", "service9")
	assert.ErrorIs(t, err, domain.ErrServiceNotOffered)

	_, err = uc.SetProvider(ctx, "u1", "emp9")
	assert.ErrorIs(t, err, salon.ErrEmployeeNotFound)

	_, err = uc.SetPaymentMethod(ctx, "u1", "card")
	assert.True(t, errors.As(err, &ve))

	uc.Discard(ctx, "u1")
	_, err = uc.Get(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrNoDraft)
}
