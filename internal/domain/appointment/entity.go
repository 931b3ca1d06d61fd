package appointment

import (
	"time"

	"github.com/BruksfildServices01/salonq/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel moves ap to cancelled. An already cancelled appointment is left
// as is and reported unchanged.
func Cancel(ap *models.Appointment, now time.Time) (bool, error) {
	if Status(ap.Status) == StatusCancelled {
		return false, nil
	}
	if err := CanCancel(Status(ap.Status)); err != nil {
		return false, err
	}

	ap.Status = string(StatusCancelled)
	ap.UpdatedAt = now
	return true, nil
}

func AddService(ap *models.Appointment, svc models.Service, now time.Time) error {
	if err := CanAmend(Status(ap.Status)); err != nil {
		return err
	}

	ap.Services = append(ap.Services, svc)
	ap.TotalAmount += svc.Price
	ap.UpdatedAt = now
	return nil
}

// HoldsSlot reports whether ap still occupies its provider's slot.
func HoldsSlot(ap *models.Appointment) bool {
	return Status(ap.Status) != StatusCancelled
}
