package commands

import (
	"errors"
	"time"

	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"
	"dockyard/internal/pkg/errs"
	"dockyard/internal/pkg/guard"
)

var ErrScheduleTruckCommandIsNotConstructed = errors.New(
	"ScheduleTruckCommand must be created via NewScheduleTruckCommand constructor",
)

// ScheduleTruckCommand represents a request to book a new truck visit.
// The truck starts in Scheduled status with no ramp assigned.
//
// Example:
//
//	plate, _ := truck.NewLicensePlate("ABC-123")
//	cmd, err := NewScheduleTruckCommand(
//	    kernel.NewUUID(), plate, arrival, truck.PriorityNormal, 12, "chilled goods")
//	if err != nil {
//	    return fmt.Errorf("invalid booking: %w", err)
//	}
type ScheduleTruckCommand struct { //nolint:recvcheck //using for validation
	truckID          kernel.UUID
	plate            truck.LicensePlate
	scheduledArrival time.Time
	priority         truck.Priority
	palletCount      int
	cargoDescription string

	guard guard.ConstructorGuard
}

// NewScheduleTruckCommand creates a booking command. Validation of the
// pallet count range and cargo description limits happens in the Truck
// constructor; this command validates identity, plate and arrival moment.
func NewScheduleTruckCommand(
	truckID kernel.UUID,
	plate truck.LicensePlate,
	scheduledArrival time.Time,
	priority truck.Priority,
	palletCount int,
	cargoDescription string,
) (ScheduleTruckCommand, error) {
	cmd := ScheduleTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTruckID(truckID),
		cmd.setPlate(plate),
		cmd.setScheduledArrival(scheduledArrival),
	); err != nil {
		return ScheduleTruckCommand{}, err
	}

	cmd.priority = priority
	cmd.palletCount = palletCount
	cmd.cargoDescription = cargoDescription
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleTruckCommand) Validate() error {
	return c.guard.Validate(ErrScheduleTruckCommandIsNotConstructed)
}

// TruckID returns the identifier for the new truck.
func (c ScheduleTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

// Plate returns the truck's license plate.
func (c ScheduleTruckCommand) Plate() truck.LicensePlate {
	return c.plate
}

// ScheduledArrival returns the booked arrival moment.
func (c ScheduleTruckCommand) ScheduledArrival() time.Time {
	return c.scheduledArrival
}

// Priority returns the requested handling priority.
func (c ScheduleTruckCommand) Priority() truck.Priority {
	return c.priority
}

// PalletCount returns the declared number of pallets.
func (c ScheduleTruckCommand) PalletCount() int {
	return c.palletCount
}

// CargoDescription returns the free-text cargo description.
func (c ScheduleTruckCommand) CargoDescription() string {
	return c.cargoDescription
}

func (c *ScheduleTruckCommand) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}
	c.truckID = truckID
	return nil
}

func (c *ScheduleTruckCommand) setPlate(plate truck.LicensePlate) error {
	if err := plate.Validate(); err != nil {
		return err
	}
	c.plate = plate
	return nil
}

func (c *ScheduleTruckCommand) setScheduledArrival(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("scheduled arrival")
	}
	c.scheduledArrival = at
	return nil
}
