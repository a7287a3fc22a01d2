package commands

import (
	"errors"

	"dockyard/internal/core/application/policy"
	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/pkg/errs"
	"dockyard/internal/pkg/guard"
)

var ErrStartWorkCommandIsNotConstructed = errors.New(
	"StartWorkCommand must be created via NewStartWorkCommand constructor",
)

// StartWorkCommand represents a handler taking over an arrived truck.
// Permitted only from Arrived status; records the handler identity, name
// and a start timestamp.
type StartWorkCommand struct { //nolint:recvcheck //using for validation
	truckID   kernel.UUID
	actorID   kernel.UUID
	actorName string
	role      policy.Role

	guard guard.ConstructorGuard
}

// NewStartWorkCommand creates a start-work command for the given truck and
// acting handler.
func NewStartWorkCommand(
	truckID, actorID kernel.UUID,
	actorName string,
	role policy.Role,
) (StartWorkCommand, error) {
	if err := errors.Join(
		truckID.Validate(),
		actorID.Validate(),
		role.Validate(),
	); err != nil {
		return StartWorkCommand{}, err
	}
	if actorName == "" {
		return StartWorkCommand{}, errs.NewValueIsRequiredError("actor name")
	}

	return StartWorkCommand{
		truckID:   truckID,
		actorID:   actorID,
		actorName: actorName,
		role:      role,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartWorkCommand) Validate() error {
	return c.guard.Validate(ErrStartWorkCommandIsNotConstructed)
}

// TruckID returns the truck to start handling.
func (c StartWorkCommand) TruckID() kernel.UUID {
	return c.truckID
}

// ActorID returns the handler's identifier.
func (c StartWorkCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorName returns the handler's display name.
func (c StartWorkCommand) ActorName() string {
	return c.actorName
}

// Role returns the acting session's role.
func (c StartWorkCommand) Role() policy.Role {
	return c.role
}
