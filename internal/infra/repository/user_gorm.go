package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salonq/internal/domain/user"
	"github.com/BruksfildServices01/salonq/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByMobile(ctx context.Context, mobile string) (*models.User, error) {
	return r.first(ctx, "mobile_number = ?", mobile)
}

func (r *UserGormRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserGormRepository) first(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return createUser(tx, u)
	})
}

func (r *UserGormRepository) CreateOwner(ctx context.Context, u *models.User, s *models.Salon) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createUser(tx, u); err != nil {
			return err
		}
		return tx.Create(s).Error
	})
}

func (r *UserGormRepository) Update(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("mobile_number = ? AND id <> ?", u.MobileNumber, u.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return user.ErrMobileTaken
		}

		res := tx.Model(&models.User{}).
			Where("id = ?", u.ID).
			Updates(map[string]any{
				"name":          u.Name,
				"mobile_number": u.MobileNumber,
				"gender":        u.Gender,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return user.ErrNotFound
		}
		return nil
	})
}

func createUser(tx *gorm.DB, u *models.User) error {
	var count int64
	if err := tx.Model(&models.User{}).
		Where("mobile_number = ?", u.MobileNumber).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return user.ErrMobileTaken
	}
	return tx.Create(u).Error
}

// Compile-time check
var _ user.Repository = (*UserGormRepository)(nil)
