package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salonq/internal/blobstore"
	"github.com/BruksfildServices01/salonq/internal/models"
)

func TestSessionBlob_PerDevice(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemory()
	repo := NewSessionBlobRepository(store)

	s, err := repo.Load(ctx, "phone-a")
	require.NoError(t, err)
	assert.Nil(t, s)

	saved := &models.Session{User: models.User{ID: "u1", Name: "Jo"}, SavedAt: time.Unix(1700000000, 0).UTC()}
	require.NoError(t, repo.Save(ctx, "phone-a", saved))

	got, err := repo.Load(ctx, "phone-a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.User.ID)

	other, err := repo.Load(ctx, "phone-b")
	require.NoError(t, err)
	assert.Nil(t, other)

	_, ok, _ := store.Get(ctx, "device:phone-a:user")
	assert.True(t, ok)

	require.NoError(t, repo.Clear(ctx, "phone-a"))
	got, err = repo.Load(ctx, "phone-a")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOTPBlob_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewOTPBlobRepository(blobstore.NewMemory())

	ch, err := repo.Load(ctx, "4045551234")
	require.NoError(t, err)
	assert.Nil(t, ch)

	exp := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, "4045551234", &models.OTPChallenge{Hash: "h", ExpiresAt: exp, AttemptsLeft: 5}))

	ch, err = repo.Load(ctx, "4045551234")
	require.NoError(t, err)
	require.NotNil(t, ch)
	assert.Equal(t, 5, ch.AttemptsLeft)
	assert.True(t, exp.Equal(ch.ExpiresAt))

	require.NoError(t, repo.Delete(ctx, "4045551234"))
	ch, err = repo.Load(ctx, "4045551234")
	require.NoError(t, err)
	assert.Nil(t, ch)
}
