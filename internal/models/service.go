package models

// Service is catalog reference data. Appointments embed copies so later
// price changes never alter a confirmed booking.
type Service struct {
	ID          string  `gorm:"primaryKey;size:64" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Description string  `gorm:"size:255" json:"description,omitempty"`
	SalonID     string  `gorm:"size:64;index" json:"salonId"`
}
