package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salonq/internal/domain/appointment"
	"github.com/BruksfildServices01/salonq/internal/models"
)

type GetAvailability struct {
	salons SalonReader
	oracle domain.AvailabilityOracle
	clock  domain.Clock
}

func NewGetAvailability(
	salons SalonReader,
	oracle domain.AvailabilityOracle,
	clock domain.Clock,
) *GetAvailability {
	return &GetAvailability{salons: salons, oracle: oracle, clock: clock}
}

// Execute returns the provider's 7-day grid starting today with
// availability filled in.
func (uc *GetAvailability) Execute(ctx context.Context, employeeID string) ([]models.TimeSlot, error) {
	if _, err := uc.salons.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	slots := domain.GenerateSlots(employeeID, uc.clock.Now())
	if err := uc.oracle.MarkAvailability(ctx, slots); err != nil {
		return nil, err
	}
	return slots, nil
}
