package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salonq/internal/domain/user"
	"github.com/BruksfildServices01/salonq/internal/httperr"
	"github.com/BruksfildServices01/salonq/internal/validators"
)

type LoginInput struct {
	MobileNumber string
	OTP          string
	DeviceID     string
}

type Login struct {
	users    user.Repository
	otp      *OTPVerifier
	tokens   *TokenIssuer
	sessions SessionStore
	clock    Clock
	log      *zap.Logger
}

func NewLogin(
	users user.Repository,
	otp *OTPVerifier,
	tokens *TokenIssuer,
	sessions SessionStore,
	clock Clock,
	log *zap.Logger,
) *Login {
	return &Login{users: users, otp: otp, tokens: tokens, sessions: sessions, clock: clock, log: log}
}

func (uc *Login) Execute(ctx context.Context, in LoginInput) (*AuthResult, error) {
	mobile, ok := validators.NormalizeMobile(in.MobileNumber)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_mobile")
	}

	if err := uc.otp.Verify(ctx, mobile, in.OTP); err != nil {
		return nil, err
	}

	u, err := uc.users.FindByMobile(ctx, mobile)
	if errors.Is(err, user.ErrNotFound) {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	if err != nil {
		return nil, err
	}

	res, err := issueSession(ctx, uc.tokens, uc.sessions, uc.clock, in.DeviceID, u)
	if err != nil {
		return nil, err
	}

	uc.log.Info("Login: signed in", zap.String("user_id", u.ID))
	return res, nil
}
