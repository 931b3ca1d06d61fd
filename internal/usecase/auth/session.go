package auth

import (
	"context"

	"github.com/BruksfildServices01/salonq/internal/models"
)

type LoadSession struct {
	sessions SessionStore
}

func NewLoadSession(sessions SessionStore) *LoadSession {
	return &LoadSession{sessions: sessions}
}

// Execute returns the device's saved session, or nil when there is none
// or it belongs to a different user.
func (uc *LoadSession) Execute(ctx context.Context, deviceID, userID string) (*models.Session, error) {
	s, err := uc.sessions.Load(ctx, deviceID)
	if err != nil || s == nil {
		return nil, err
	}
	if s.User.ID != userID {
		return nil, nil
	}
	return s, nil
}

type Logout struct {
	sessions SessionStore
}

func NewLogout(sessions SessionStore) *Logout {
	return &Logout{sessions: sessions}
}

func (uc *Logout) Execute(ctx context.Context, deviceID string) error {
	return uc.sessions.Clear(ctx, deviceID)
}
