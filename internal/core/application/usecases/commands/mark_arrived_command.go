package commands

import (
	"errors"

	"dockyard/internal/core/application/policy"
	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/pkg/guard"
)

var ErrMarkArrivedCommandIsNotConstructed = errors.New(
	"MarkArrivedCommand must be created via NewMarkArrivedCommand constructor",
)

// MarkArrivedCommand represents a truck checking in at the gate.
// Permitted only from Scheduled status; the arrival timestamp is recorded
// server-side by the handle_truck_arrival procedure, keeping actual and
// scheduled arrival distinct for later reporting.
type MarkArrivedCommand struct { //nolint:recvcheck //using for validation
	truckID kernel.UUID
	actorID kernel.UUID
	role    policy.Role

	guard guard.ConstructorGuard
}

// NewMarkArrivedCommand creates an arrival command for the given truck and
// acting user.
func NewMarkArrivedCommand(truckID, actorID kernel.UUID, role policy.Role) (MarkArrivedCommand, error) {
	if err := errors.Join(
		truckID.Validate(),
		actorID.Validate(),
		role.Validate(),
	); err != nil {
		return MarkArrivedCommand{}, err
	}

	return MarkArrivedCommand{
		truckID: truckID,
		actorID: actorID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkArrivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkArrivedCommandIsNotConstructed)
}

// TruckID returns the arriving truck's identifier.
func (c MarkArrivedCommand) TruckID() kernel.UUID {
	return c.truckID
}

// ActorID returns the acting user's identifier.
func (c MarkArrivedCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Role returns the acting session's role.
func (c MarkArrivedCommand) Role() policy.Role {
	return c.role
}
