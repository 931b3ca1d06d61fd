package appointment

import (
	"context"

	"github.com/BruksfildServices01/salonq/internal/models"
)

// MutateFunc edits an appointment in place and reports whether anything
// changed. Returning changed=false skips the write.
type MutateFunc func(ap *models.Appointment) (changed bool, err error)

type Repository interface {
	// ListForUser returns the user's appointments in booking order.
	ListForUser(
		ctx context.Context,
		userID string,
	) ([]models.Appointment, error)

	// Create appends ap to its customer's list. A non-cancelled appointment
	// already holding the same employee/date/start fails with ErrSlotTaken.
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Update runs mutate against one appointment and persists the result.
	Update(
		ctx context.Context,
		userID string,
		appointmentID string,
		mutate MutateFunc,
	) (*models.Appointment, error)
}

// SlotIndex answers which start times are held for a provider on a date.
type SlotIndex interface {
	BookedStarts(
		ctx context.Context,
		employeeID string,
		date string,
	) (map[string]string, error)
}
