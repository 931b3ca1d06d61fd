package repository

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/salonq/internal/blobstore"
	domain "github.com/BruksfildServices01/salonq/internal/domain/appointment"
	"github.com/BruksfildServices01/salonq/internal/models"
)

func OTPKey(mobile string) string {
	return "otp_" + mobile
}

type OTPBlobRepository struct {
	store blobstore.Store
}

func NewOTPBlobRepository(store blobstore.Store) *OTPBlobRepository {
	return &OTPBlobRepository{store: store}
}

func (r *OTPBlobRepository) Save(ctx context.Context, mobile string, ch *models.OTPChallenge) error {
	key := OTPKey(mobile)
	b, err := json.Marshal(ch)
	if err != nil {
		return &domain.StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := r.store.Set(ctx, key, string(b)); err != nil {
		return &domain.StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}

// Load returns nil when no challenge is pending for mobile.
func (r *OTPBlobRepository) Load(ctx context.Context, mobile string) (*models.OTPChallenge, error) {
	key := OTPKey(mobile)
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, &domain.StorageError{Op: "read", Key: key, Err: err}
	}
	if !ok {
		return nil, nil
	}
	var ch models.OTPChallenge
	if err := json.Unmarshal([]byte(raw), &ch); err != nil {
		return nil, &domain.StorageError{Op: "decode", Key: key, Err: err}
	}
	return &ch, nil
}

func (r *OTPBlobRepository) Delete(ctx context.Context, mobile string) error {
	key := OTPKey(mobile)
	if err := r.store.Remove(ctx, key); err != nil {
		return &domain.StorageError{Op: "remove", Key: key, Err: err}
	}
	return nil
}
