package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/salonq/internal/models"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrMobileTaken = errors.New("mobile number already registered")
)

type Repository interface {
	FindByMobile(ctx context.Context, mobile string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)

	Create(ctx context.Context, u *models.User) error

	// CreateOwner stores the owner together with their salon and stylists.
	CreateOwner(ctx context.Context, u *models.User, s *models.Salon) error

	// Update saves the editable profile fields (name, mobile number, gender).
	Update(ctx context.Context, u *models.User) error
}
