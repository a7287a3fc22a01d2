package commands

import (
	"context"

	"dockyard/internal/core/domain/model/truck"
)

// ScheduleTruckCommandHandler handles the business logic for booking a new
// truck visit. The truck is created in Scheduled status with no ramp; ramp
// assignment is a separate command so that availability is always checked
// against the latest occupancy.
type ScheduleTruckCommandHandler struct {
	uowFactory TruckUoWFactory
}

// NewScheduleTruckCommandHandler creates a handler for truck booking.
// Requires a TruckUoWFactory for transactional persistence.
func NewScheduleTruckCommandHandler(uowFactory TruckUoWFactory) ScheduleTruckCommandHandler {
	return ScheduleTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking command. Creates the truck aggregate and
// persists it in a transaction; validation failures are returned before any
// remote call and leave the store untouched.
func (h *ScheduleTruckCommandHandler) Handle(ctx context.Context, cmd ScheduleTruckCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newTruck, err := truck.NewTruck(
		cmd.TruckID(),
		cmd.Plate(),
		cmd.ScheduledArrival(),
		cmd.Priority(),
		cmd.PalletCount(),
		cmd.CargoDescription(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TruckRepository().Add(ctx, newTruck); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
