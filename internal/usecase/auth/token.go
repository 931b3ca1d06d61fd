package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salonq/internal/models"
)

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  Clock
}

func NewTokenIssuer(secret string, ttl time.Duration, clock Clock) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, clock: clock}
}

// --------- JWT ---------

func (t *TokenIssuer) Issue(u *models.User) (string, error) {
	now := t.clock.Now()
	claims := jwt.MapClaims{
		"sub":     u.ID,
		"salonId": u.SalonID,
		"role":    u.UserType,
		"exp":     now.Add(t.ttl).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}
