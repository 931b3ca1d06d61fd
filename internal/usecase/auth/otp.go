package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salonq/internal/httperr"
	"github.com/BruksfildServices01/salonq/internal/models"
	"github.com/BruksfildServices01/salonq/internal/validators"
)

const (
	OTPLength   = 6
	OTPAttempts = 5
)

// LogSender stands in for an SMS gateway.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, mobile, code string) error {
	s.log.Info("OTP: code issued", zap.String("mobile", mobile), zap.String("code", code))
	return nil
}

type RequestOTP struct {
	store  OTPStore
	sender OTPSender
	clock  Clock
	ttl    time.Duration
	log    *zap.Logger

	newCode func() (string, error)
}

func NewRequestOTP(store OTPStore, sender OTPSender, clock Clock, ttl time.Duration, log *zap.Logger) *RequestOTP {
	return &RequestOTP{
		store:   store,
		sender:  sender,
		clock:   clock,
		ttl:     ttl,
		log:     log,
		newCode: randomCode,
	}
}

// Execute replaces any pending challenge for the number with a fresh one.
func (uc *RequestOTP) Execute(ctx context.Context, rawMobile string) error {
	mobile, ok := validators.NormalizeMobile(rawMobile)
	if !ok {
		return httperr.ErrBusiness("invalid_mobile")
	}

	code, err := uc.newCode()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash otp: %w", err)
	}

	if err := uc.store.Save(ctx, mobile, &models.OTPChallenge{
		Hash:         string(hash),
		ExpiresAt:    uc.clock.Now().Add(uc.ttl),
		AttemptsLeft: OTPAttempts,
	}); err != nil {
		return err
	}

	if err := uc.sender.Send(ctx, mobile, code); err != nil {
		uc.log.Error("RequestOTP: delivery failed", zap.String("mobile", mobile), zap.Error(err))
		return httperr.ErrBusiness("otp_delivery_failed")
	}
	return nil
}

// OTPVerifier consumes pending challenges.
type OTPVerifier struct {
	store OTPStore
	clock Clock
}

func NewOTPVerifier(store OTPStore, clock Clock) *OTPVerifier {
	return &OTPVerifier{store: store, clock: clock}
}

// Verify checks code against the pending challenge. A match consumes it;
// a miss burns one attempt.
func (v *OTPVerifier) Verify(ctx context.Context, mobile, code string) error {
	if !validators.IsOTPCode(code) {
		return httperr.ErrBusiness("invalid_otp")
	}

	ch, err := v.store.Load(ctx, mobile)
	if err != nil {
		return err
	}
	if ch == nil {
		return httperr.ErrBusiness("otp_not_requested")
	}

	if v.clock.Now().After(ch.ExpiresAt) {
		if err := v.store.Delete(ctx, mobile); err != nil {
			return err
		}
		return httperr.ErrBusiness("otp_expired")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ch.Hash), []byte(code)); err != nil {
		ch.AttemptsLeft--
		if ch.AttemptsLeft <= 0 {
			if err := v.store.Delete(ctx, mobile); err != nil {
				return err
			}
			return httperr.ErrBusiness("otp_attempts_exceeded")
		}
		if err := v.store.Save(ctx, mobile, ch); err != nil {
			return err
		}
		return httperr.ErrBusiness("invalid_otp")
	}

	return v.store.Delete(ctx, mobile)
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", OTPLength, n.Int64()), nil
}
