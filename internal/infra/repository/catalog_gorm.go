package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salonq/internal/domain/salon"
	"github.com/BruksfildServices01/salonq/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *CatalogGormRepository) ListSalons(ctx context.Context) ([]models.Salon, error) {
	var salons []models.Salon
	if err := r.db.WithContext(ctx).
		Preload("Employees").
		Preload("Services").
		Order("name ASC").
		Find(&salons).Error; err != nil {
		return nil, err
	}
	return salons, nil
}

func (r *CatalogGormRepository) GetSalon(ctx context.Context, id string) (*models.Salon, error) {
	var s models.Salon
	err := r.db.WithContext(ctx).
		Preload("Employees", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Services").
		Where("id = ?", id).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, salon.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CatalogGormRepository) UpdateSalon(ctx context.Context, s *models.Salon) error {
	res := r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"name":         s.Name,
			"address":      s.Address,
			"opening_time": s.OpeningTime,
			"closing_time": s.ClosingTime,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return salon.ErrNotFound
	}
	return nil
}

func (r *CatalogGormRepository) AddPhoto(ctx context.Context, salonID, url string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s models.Salon
		if err := tx.Where("id = ?", salonID).First(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return salon.ErrNotFound
			}
			return err
		}
		s.Photos = append(s.Photos, url)
		return tx.Model(&s).Select("photos").Updates(&s).Error
	})
}

// --------------------------------------------------
// Employee
// --------------------------------------------------

func (r *CatalogGormRepository) AddEmployee(ctx context.Context, e *models.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *CatalogGormRepository) RemoveEmployee(ctx context.Context, salonID, employeeID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", employeeID, salonID).
		Delete(&models.Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return salon.ErrEmployeeNotFound
	}
	return nil
}

func (r *CatalogGormRepository) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	var e models.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, salon.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Compile-time check
var _ salon.Repository = (*CatalogGormRepository)(nil)
