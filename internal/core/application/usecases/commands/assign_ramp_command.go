package commands

import (
	"errors"

	"dockyard/internal/core/application/policy"
	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"
	"dockyard/internal/pkg/guard"
)

var ErrAssignRampCommandIsNotConstructed = errors.New(
	"AssignRampCommand must be created via NewAssignRampCommand constructor",
)

// AssignRampCommand represents a request to attach a truck to a dock.
// The ramp number must belong to the declared loading/unloading pools;
// the excluded service bay is rejected at construction, before any check
// against occupancy.
//
// An optional staff reference records who was assigned to work the ramp.
type AssignRampCommand struct { //nolint:recvcheck //using for validation
	truckID kernel.UUID
	ramp    truck.RampNumber
	staffID *kernel.UUID
	role    policy.Role

	guard guard.ConstructorGuard
}

// NewAssignRampCommand creates a ramp assignment command.
// Rejects ramp numbers outside the assignable pools regardless of
// availability, including the service bay.
func NewAssignRampCommand(
	truckID kernel.UUID,
	rampNumber int,
	staffID *kernel.UUID,
	role policy.Role,
) (AssignRampCommand, error) {
	cmd := AssignRampCommand{
		guard: guard.NewConstructorGuard(),
	}

	ramp, err := truck.NewRampNumber(rampNumber)
	if err != nil {
		return AssignRampCommand{}, err
	}

	if err = errors.Join(
		truckID.Validate(),
		role.Validate(),
	); err != nil {
		return AssignRampCommand{}, err
	}
	if staffID != nil {
		if err = staffID.Validate(); err != nil {
			return AssignRampCommand{}, err
		}
	}

	cmd.truckID = truckID
	cmd.ramp = ramp
	cmd.staffID = staffID
	cmd.role = role
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRampCommand) Validate() error {
	return c.guard.Validate(ErrAssignRampCommandIsNotConstructed)
}

// TruckID returns the truck to assign.
func (c AssignRampCommand) TruckID() kernel.UUID {
	return c.truckID
}

// Ramp returns the validated candidate ramp.
func (c AssignRampCommand) Ramp() truck.RampNumber {
	return c.ramp
}

// StaffID returns the optional staff reference.
func (c AssignRampCommand) StaffID() *kernel.UUID {
	return c.staffID
}

// Role returns the acting session's role.
func (c AssignRampCommand) Role() policy.Role {
	return c.role
}
