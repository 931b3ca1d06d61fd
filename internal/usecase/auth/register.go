package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salonq/internal/domain/user"
	"github.com/BruksfildServices01/salonq/internal/httperr"
	"github.com/BruksfildServices01/salonq/internal/models"
	"github.com/BruksfildServices01/salonq/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type StylistInput struct {
	Name         string
	MobileNumber string
}

type RegisterInput struct {
	Name         string
	MobileNumber string
	Gender       string
	UserType     string
	OTP          string
	DeviceID     string

	// Owners only.
	SalonName string
	Address   string
	Stylists  []StylistInput
}

type AuthResult struct {
	User  *models.User  `json:"user"`
	Salon *models.Salon `json:"salon,omitempty"`
	Token string        `json:"token"`
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	users    user.Repository
	otp      *OTPVerifier
	tokens   *TokenIssuer
	sessions SessionStore
	clock    Clock
	log      *zap.Logger

	newID func() string
}

func NewRegister(
	users user.Repository,
	otp *OTPVerifier,
	tokens *TokenIssuer,
	sessions SessionStore,
	clock Clock,
	log *zap.Logger,
) *Register {
	return &Register{
		users:    users,
		otp:      otp,
		tokens:   tokens,
		sessions: sessions,
		clock:    clock,
		log:      log,
		newID:    uuid.NewString,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*AuthResult, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("name_required")
	}
	mobile, ok := validators.NormalizeMobile(in.MobileNumber)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_mobile")
	}

	userType := in.UserType
	if userType == "" {
		userType = models.UserTypeCustomer
	}
	if userType != models.UserTypeCustomer && userType != models.UserTypeOwner {
		return nil, httperr.ErrBusiness("invalid_user_type")
	}

	var stylists []models.Employee
	if userType == models.UserTypeOwner {
		if strings.TrimSpace(in.SalonName) == "" || strings.TrimSpace(in.Address) == "" {
			return nil, httperr.ErrBusiness("salon_details_required")
		}
		for _, s := range in.Stylists {
			m, ok := validators.NormalizeMobile(s.MobileNumber)
			if strings.TrimSpace(s.Name) == "" || !ok {
				return nil, httperr.ErrBusiness("invalid_stylist")
			}
			stylists = append(stylists, models.Employee{
				ID:           uc.newID(),
				Name:         strings.TrimSpace(s.Name),
				MobileNumber: m,
			})
		}
	}

	// --------------------------------------------------
	// 2. OTP
	// --------------------------------------------------
	if err := uc.otp.Verify(ctx, mobile, in.OTP); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Persist
	// --------------------------------------------------
	u := &models.User{
		ID:           uc.newID(),
		Name:         name,
		MobileNumber: mobile,
		Gender:       in.Gender,
		UserType:     userType,
		IsVerified:   true,
		CreatedAt:    uc.clock.Now(),
	}

	var shop *models.Salon
	var err error
	if userType == models.UserTypeOwner {
		shop = &models.Salon{
			ID:          uc.newID(),
			Name:        strings.TrimSpace(in.SalonName),
			Address:     strings.TrimSpace(in.Address),
			OwnerID:     u.ID,
			OpeningTime: "09:00",
			ClosingTime: "22:00",
			Photos:      []string{},
		}
		for i := range stylists {
			stylists[i].SalonID = shop.ID
		}
		shop.Employees = stylists
		u.SalonID = shop.ID
		err = uc.users.CreateOwner(ctx, u, shop)
	} else {
		err = uc.users.Create(ctx, u)
	}
	if errors.Is(err, user.ErrMobileTaken) {
		return nil, httperr.ErrBusiness("mobile_already_registered")
	}
	if err != nil {
		uc.log.Error("Register: persist failed", zap.Error(err))
		return nil, err
	}

	// --------------------------------------------------
	// 4. Token + session
	// --------------------------------------------------
	res, err := issueSession(ctx, uc.tokens, uc.sessions, uc.clock, in.DeviceID, u)
	if err != nil {
		return nil, err
	}
	res.Salon = shop

	uc.log.Info("Register: user created", zap.String("user_id", u.ID), zap.String("user_type", userType))
	return res, nil
}

func issueSession(
	ctx context.Context,
	tokens *TokenIssuer,
	sessions SessionStore,
	clock Clock,
	deviceID string,
	u *models.User,
) (*AuthResult, error) {

	token, err := tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	if deviceID != "" {
		if err := sessions.Save(ctx, deviceID, &models.Session{User: *u, SavedAt: clock.Now()}); err != nil {
			return nil, err
		}
	}

	return &AuthResult{User: u, Token: token}, nil
}
