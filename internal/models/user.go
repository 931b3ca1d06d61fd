package models

import "time"

const (
	UserTypeCustomer = "customer"
	UserTypeOwner    = "owner"
)

type User struct {
	ID           string `gorm:"primaryKey;size:64" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	MobileNumber string `gorm:"size:20;uniqueIndex;not null" json:"mobileNumber"`
	Gender       string `gorm:"size:10" json:"gender,omitempty"`
	UserType     string `gorm:"size:20;default:'customer'" json:"userType"`
	IsVerified   bool   `json:"isVerified"`

	// Owners only.
	SalonID string `gorm:"size:64" json:"salonId,omitempty"`

	// Customers only.
	WalletBalance float64 `json:"walletBalance"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (u *User) IsOwner() bool {
	return u.UserType == UserTypeOwner
}
