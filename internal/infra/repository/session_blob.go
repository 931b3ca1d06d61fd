package repository

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/salonq/internal/blobstore"
	domain "github.com/BruksfildServices01/salonq/internal/domain/appointment"
	"github.com/BruksfildServices01/salonq/internal/models"
)

const SessionKey = "user"

// SessionBlobRepository stores one session per device under the "user" key.
type SessionBlobRepository struct {
	store blobstore.Store
}

func NewSessionBlobRepository(store blobstore.Store) *SessionBlobRepository {
	return &SessionBlobRepository{store: store}
}

func (r *SessionBlobRepository) device(deviceID string) blobstore.Store {
	return blobstore.Scoped(r.store, blobstore.DevicePrefix(deviceID))
}

func (r *SessionBlobRepository) Save(ctx context.Context, deviceID string, s *models.Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return &domain.StorageError{Op: "encode", Key: SessionKey, Err: err}
	}
	if err := r.device(deviceID).Set(ctx, SessionKey, string(b)); err != nil {
		return &domain.StorageError{Op: "write", Key: SessionKey, Err: err}
	}
	return nil
}

// Load returns nil when the device has no session.
func (r *SessionBlobRepository) Load(ctx context.Context, deviceID string) (*models.Session, error) {
	raw, ok, err := r.device(deviceID).Get(ctx, SessionKey)
	if err != nil {
		return nil, &domain.StorageError{Op: "read", Key: SessionKey, Err: err}
	}
	if !ok {
		return nil, nil
	}
	var s models.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, &domain.StorageError{Op: "decode", Key: SessionKey, Err: err}
	}
	return &s, nil
}

func (r *SessionBlobRepository) Clear(ctx context.Context, deviceID string) error {
	if err := r.device(deviceID).Remove(ctx, SessionKey); err != nil {
		return &domain.StorageError{Op: "remove", Key: SessionKey, Err: err}
	}
	return nil
}
