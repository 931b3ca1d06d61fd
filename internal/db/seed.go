package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salonq/internal/models"
)

// DemoSalon is the catalog a fresh database starts with.
func DemoSalon() models.Salon {
	return models.Salon{
		ID:          "1",
		Name:        "The Sharp Side",
		Address:     "1201 Peachtree St NE, Atlanta GA 30309",
		OwnerID:     "owner1",
		OpeningTime: "09:00",
		ClosingTime: "22:00",
		Photos:      []string{},
		Employees: []models.Employee{
			{ID: "emp1", Name: "Nate Black", MobileNumber: "+1234567890", SalonID: "1"},
		},
		Services: []models.Service{
			{ID: "service1", Name: "Hair Cutting", Price: 25, Duration: 30, SalonID: "1"},
			{ID: "service2", Name: "Hair Spa", Price: 40, Duration: 60, SalonID: "1"},
			{ID: "service3", Name: "Keratin Treatment", Price: 80, Duration: 120, SalonID: "1"},
		},
	}
}

// Seed inserts DemoSalon unless a salon with its id already exists.
func Seed(ctx context.Context, db *gorm.DB) error {
	demo := DemoSalon()

	var existing models.Salon
	err := db.WithContext(ctx).Where("id = ?", demo.ID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("seed lookup: %w", err)
	}

	if err := db.WithContext(ctx).Create(&demo).Error; err != nil {
		return fmt.Errorf("seed salon: %w", err)
	}
	return nil
}
