package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salonq/internal/domain/appointment"
)

func TestCancel_OnlyTargetChanges(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	first, err := e.booker().Execute(ctx, payload("u1", "emp1", "2026-03-31", "11:00", haircut))
	require.NoError(t, err)
	second, err := e.booker().Execute(ctx, payload("u1", "emp1", "2026-03-31", "12:00", spa))
	require.NoError(t, err)

	e.clock = fixedClock{testNow.Add(time.Hour)}
	got, err := e.canceller(false).Execute(ctx, "u1", first.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)

	list, err := e.repo.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, string(domain.StatusCancelled), list[0].Status)
	assert.True(t, first.CreatedAt.Equal(list[0].CreatedAt))
	assert.True(t, list[0].UpdatedAt.After(first.UpdatedAt))
	assert.Equal(t, first.Services, list[0].Services)
	assert.InDelta(t, first.TotalAmount, list[0].TotalAmount, 1e-9)

	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, second.Status, list[1].Status)
	assert.True(t, second.UpdatedAt.Equal(list[1].UpdatedAt))
	assert.Equal(t, second.Services, list[1].Services)
}

func TestCancel_ReleasesSlot(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	ap, err := e.booker().Execute(ctx, payload("u1", "emp1", "2026-03-31", "11:00", haircut))
	require.NoError(t, err)
	_, err = e.canceller(false).Execute(ctx, "u1", ap.ID)
	require.NoError(t, err)

	_, err = e.booker().Execute(ctx, payload("u2", "emp1", "2026-03-31", "11:00", haircut))
	require.NoError(t, err)
}

func TestCancel_Idempotent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	ap, err := e.booker().Execute(ctx, payload("u1", "emp1", "2026-03-31", "11:00", haircut))
	require.NoError(t, err)

	first, err := e.canceller(false).Execute(ctx, "u1", ap.ID)
	require.NoError(t, err)

	e.clock = fixedClock{testNow.Add(time.Hour)}
	again, err := e.canceller(false).Execute(ctx, "u1", ap.ID)
	require.NoError(t, err)
	assert.Equal(t, first.UpdatedAt, again.UpdatedAt)
}

func TestCancel_MissingID(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.canceller(false).Execute(ctx, "u1", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ap, err := e.canceller(true).Execute(ctx, "u1", "nope")
	assert.NoError(t, err)
	assert.Nil(t, ap)
}

func TestCancel_OtherUsersAppointmentIsNotFound(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	ap, err := e.booker().Execute(ctx, payload("u1", "emp1", "2026-03-31", "11:00", haircut))
	require.NoError(t, err)

	_, err = e.canceller(false).Execute(ctx, "u2", ap.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
