package commands

import (
	"errors"

	"dockyard/internal/core/application/policy"
	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/pkg/guard"
)

var ErrDeleteTruckCommandIsNotConstructed = errors.New(
	"DeleteTruckCommand must be created via NewDeleteTruckCommand constructor",
)

// DeleteTruckCommand represents removing a truck booking entirely.
type DeleteTruckCommand struct { //nolint:recvcheck //using for validation
	truckID kernel.UUID
	role    policy.Role

	guard guard.ConstructorGuard
}

// NewDeleteTruckCommand creates a deletion command.
func NewDeleteTruckCommand(truckID kernel.UUID, role policy.Role) (DeleteTruckCommand, error) {
	if err := errors.Join(
		truckID.Validate(),
		role.Validate(),
	); err != nil {
		return DeleteTruckCommand{}, err
	}

	return DeleteTruckCommand{
		truckID: truckID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTruckCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTruckCommandIsNotConstructed)
}

// TruckID returns the booking to remove.
func (c DeleteTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

// Role returns the acting session's role.
func (c DeleteTruckCommand) Role() policy.Role {
	return c.role
}
