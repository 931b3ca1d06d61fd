package models

import "time"

type Salon struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Address     string `gorm:"size:255" json:"address"`
	OwnerID     string `gorm:"size:64;index" json:"ownerId"`
	OpeningTime string `gorm:"size:5" json:"openingTime"`
	ClosingTime string `gorm:"size:5" json:"closingTime"`

	Photos []string `gorm:"serializer:json;type:text" json:"photos"`

	Employees []Employee `gorm:"foreignKey:SalonID;constraint:OnDelete:CASCADE;" json:"employees"`
	Services  []Service  `gorm:"foreignKey:SalonID;constraint:OnDelete:CASCADE;" json:"services"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// Employee is a provider (stylist) a slot or appointment belongs to.
type Employee struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	MobileNumber string    `gorm:"size:20" json:"mobileNumber"`
	SalonID      string    `gorm:"size:64;index" json:"salonId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FindService returns the salon's service with the given id.
func (s *Salon) FindService(id string) (Service, bool) {
	for _, svc := range s.Services {
		if svc.ID == id {
			return svc, true
		}
	}
	return Service{}, false
}

func (s *Salon) HasEmployee(id string) bool {
	for _, e := range s.Employees {
		if e.ID == id {
			return true
		}
	}
	return false
}
