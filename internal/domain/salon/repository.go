package salon

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/salonq/internal/models"
)

var (
	ErrNotFound         = errors.New("salon not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrForbidden        = errors.New("salon belongs to another owner")
)

type Repository interface {
	ListSalons(ctx context.Context) ([]models.Salon, error)

	// GetSalon loads the salon with its employees and services.
	GetSalon(ctx context.Context, id string) (*models.Salon, error)

	UpdateSalon(ctx context.Context, s *models.Salon) error
	AddEmployee(ctx context.Context, e *models.Employee) error
	RemoveEmployee(ctx context.Context, salonID, employeeID string) error
	AddPhoto(ctx context.Context, salonID, url string) error

	GetEmployee(ctx context.Context, id string) (*models.Employee, error)
}

// CanManage reports whether ownerID may edit s.
func CanManage(s *models.Salon, ownerID string) error {
	if s.OwnerID != ownerID {
		return ErrForbidden
	}
	return nil
}
