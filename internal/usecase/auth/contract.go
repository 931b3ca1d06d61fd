package auth

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salonq/internal/models"
)

type OTPStore interface {
	Save(ctx context.Context, mobile string, ch *models.OTPChallenge) error
	Load(ctx context.Context, mobile string) (*models.OTPChallenge, error)
	Delete(ctx context.Context, mobile string) error
}

type SessionStore interface {
	Save(ctx context.Context, deviceID string, s *models.Session) error
	Load(ctx context.Context, deviceID string) (*models.Session, error)
	Clear(ctx context.Context, deviceID string) error
}

// OTPSender delivers a code to the handset. Delivery itself is external.
type OTPSender interface {
	Send(ctx context.Context, mobile, code string) error
}

type Clock interface {
	Now() time.Time
}
