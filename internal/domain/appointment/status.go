package appointment

import "fmt"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

const (
	PaymentOnline = "online"
	PaymentCash   = "cash"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// ===============================
// Validations
// ===============================

// CanTransition reports whether the status machine allows from -> to.
// Cancelled and completed are terminal.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func CanCancel(current Status) error {
	if !CanTransition(current, StatusCancelled) {
		return fmt.Errorf("%w: cannot cancel a %s appointment", ErrInvalidTransition, current)
	}
	return nil
}

// CanAmend rejects changes to services once the appointment is closed.
func CanAmend(current Status) error {
	if current == StatusCancelled || current == StatusCompleted {
		return fmt.Errorf("%w: appointment is %s", ErrAppointmentClosed, current)
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

func IsPaymentMethod(m string) bool {
	return m == PaymentOnline || m == PaymentCash
}
