package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salonq/internal/domain/appointment"
)

func TestAddService_IncreasesTotalByPrice(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	ap, err := e.booker().Execute(ctx, payload("u1", "emp1", "2026-03-31", "11:00", haircut))
	require.NoError(t, err)

	got, err := e.adder().Execute(ctx, "u1", ap.ID, "service3")
	require.NoError(t, err)

	assert.Len(t, got.Services, len(ap.Services)+1)
	assert.Equal(t, "service3", got.Services[len(got.Services)-1].ID)
	assert.InDelta(t, ap.TotalAmount+80, got.TotalAmount, 1e-9)
}

func TestAddService_CancelledIsClosed(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	ap, err := e.booker().Execute(ctx, payload("u1", "emp1", "2026-03-31", "11:00", haircut, spa))
	require.NoError(t, err)
	assert.InDelta(t, 65, ap.TotalAmount, 1e-9)

	_, err = e.canceller(false).Execute(ctx, "u1", ap.ID)
	require.NoError(t, err)

	_, err = e.adder().Execute(ctx, "u1", ap.ID, "service3")
	require.ErrorIs(t, err, domain.ErrAppointmentClosed)

	stored, err := NewGetAppointment(e.repo).Execute(ctx, "u1", ap.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Services, 2)
	assert.InDelta(t, 65, stored.TotalAmount, 1e-9)
}

func TestAddService_Missing(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.adder().Execute(ctx, "u1", "nope", "service1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ap, err := e.booker().Execute(ctx, payload("u1", "emp1", "2026-03-31", "11:00", haircut))
	require.NoError(t, err)
	_, err = e.adder().Execute(ctx, "u1", ap.ID, "service9")
	assert.ErrorIs(t, err, domain.ErrServiceNotOffered)
}
