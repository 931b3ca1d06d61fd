package appointment

import (
	"context"

	"github.com/BruksfildServices01/salonq/internal/models"
)

// SalonReader is the slice of the catalog the booking flows need.
type SalonReader interface {
	GetSalon(ctx context.Context, id string) (*models.Salon, error)
	GetEmployee(ctx context.Context, id string) (*models.Employee, error)
}

// EventRecorder counts appointment lifecycle events.
type EventRecorder interface {
	AppointmentEvent(event string)
}

type noopEvents struct{}

func (noopEvents) AppointmentEvent(string) {}

func orNoop(e EventRecorder) EventRecorder {
	if e == nil {
		return noopEvents{}
	}
	return e
}
