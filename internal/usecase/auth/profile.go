package auth

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salonq/internal/domain/user"
	"github.com/BruksfildServices01/salonq/internal/httperr"
	"github.com/BruksfildServices01/salonq/internal/models"
	"github.com/BruksfildServices01/salonq/internal/validators"
)

const MinNameLength = 2

// ProfileInput carries the fields to change; nil leaves a field as is.
type ProfileInput struct {
	Name         *string
	MobileNumber *string
	Gender       *string
}

type UpdateProfile struct {
	users    user.Repository
	sessions SessionStore
	log      *zap.Logger
}

func NewUpdateProfile(users user.Repository, sessions SessionStore, log *zap.Logger) *UpdateProfile {
	return &UpdateProfile{users: users, sessions: sessions, log: log}
}

// Execute edits the caller's profile. When deviceID names a device whose
// saved session belongs to the caller, that session is refreshed too.
func (uc *UpdateProfile) Execute(ctx context.Context, userID, deviceID string, in ProfileInput) (*models.User, error) {
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.ErrBusiness("name_required")
		}
		if utf8.RuneCountInString(name) < MinNameLength {
			return nil, httperr.ErrBusiness("name_too_short")
		}
		u.Name = name
	}
	if in.MobileNumber != nil {
		mobile, ok := validators.NormalizeMobile(*in.MobileNumber)
		if !ok {
			return nil, httperr.ErrBusiness("invalid_mobile")
		}
		u.MobileNumber = mobile
	}
	if in.Gender != nil {
		u.Gender = strings.TrimSpace(*in.Gender)
	}

	err = uc.users.Update(ctx, u)
	if errors.Is(err, user.ErrMobileTaken) {
		return nil, httperr.ErrBusiness("mobile_already_registered")
	}
	if err != nil {
		return nil, err
	}

	if deviceID != "" {
		s, err := uc.sessions.Load(ctx, deviceID)
		if err != nil {
			uc.log.Warn("UpdateProfile: session refresh skipped", zap.String("user_id", userID), zap.Error(err))
		} else if s != nil && s.User.ID == userID {
			s.User = *u
			if err := uc.sessions.Save(ctx, deviceID, s); err != nil {
				uc.log.Warn("UpdateProfile: session refresh failed", zap.String("user_id", userID), zap.Error(err))
			}
		}
	}

	uc.log.Info("UpdateProfile: profile saved", zap.String("user_id", userID))
	return u, nil
}
