package dto

// AppointmentListDTO is one row of the history screens.
type AppointmentListDTO struct {
	ID           string   `json:"id"`
	SalonID      string   `json:"salon_id"`
	EmployeeID   string   `json:"employee_id"`
	Date         string   `json:"date"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	Status       string   `json:"status"`
	ServiceNames []string `json:"service_names"`
	TotalAmount  float64  `json:"total_amount"`
}

type AppointmentHistoryDTO struct {
	Upcoming []AppointmentListDTO `json:"upcoming"`
	Past     []AppointmentListDTO `json:"past"`
}
