package models

import "time"

// TimeSlot is a one-hour bookable interval for a provider. Date is
// YYYY-MM-DD, StartTime/EndTime are HH:MM (24h).
type TimeSlot struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	EmployeeID  string `json:"employeeId"`
}

// Appointment is persisted as JSON in the blob store under
// appointments_<customerId>. TimeSlot and Services are copies taken at
// booking time.
type Appointment struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	SalonID    string `json:"salonId"`
	EmployeeID string `json:"employeeId"`

	Services []Service `json:"services"`
	Date     string    `json:"date"`
	TimeSlot TimeSlot  `json:"timeSlot"`

	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`
	TotalAmount   float64 `json:"totalAmount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SumServices is the sum of embedded service prices.
func SumServices(services []Service) float64 {
	var total float64
	for _, s := range services {
		total += s.Price
	}
	return total
}
