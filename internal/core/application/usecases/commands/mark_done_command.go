package commands

import (
	"errors"

	"dockyard/internal/core/application/policy"
	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/pkg/errs"
	"dockyard/internal/pkg/guard"
)

var ErrMarkDoneCommandIsNotConstructed = errors.New(
	"MarkDoneCommand must be created via NewMarkDoneCommand constructor",
)

// MarkDoneCommand represents finishing the handling of a truck.
// Permitted only from InProgress. The primary actor is always credited with
// a handler record; when a helper took part, exactly one more record is
// written for them.
type MarkDoneCommand struct { //nolint:recvcheck //using for validation
	truckID    kernel.UUID
	actorID    kernel.UUID
	actorName  string
	helperID   *kernel.UUID
	helperName string
	role       policy.Role

	guard guard.ConstructorGuard
}

// NewMarkDoneCommand creates a completion command. helperID and helperName
// are optional but must be supplied together.
func NewMarkDoneCommand(
	truckID, actorID kernel.UUID,
	actorName string,
	helperID *kernel.UUID,
	helperName string,
	role policy.Role,
) (MarkDoneCommand, error) {
	if err := errors.Join(
		truckID.Validate(),
		actorID.Validate(),
		role.Validate(),
	); err != nil {
		return MarkDoneCommand{}, err
	}
	if actorName == "" {
		return MarkDoneCommand{}, errs.NewValueIsRequiredError("actor name")
	}
	if helperID != nil {
		if err := helperID.Validate(); err != nil {
			return MarkDoneCommand{}, err
		}
		if helperName == "" {
			return MarkDoneCommand{}, errs.NewValueIsRequiredError("helper name")
		}
	}

	return MarkDoneCommand{
		truckID:    truckID,
		actorID:    actorID,
		actorName:  actorName,
		helperID:   helperID,
		helperName: helperName,
		role:       role,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDoneCommand) Validate() error {
	return c.guard.Validate(ErrMarkDoneCommandIsNotConstructed)
}

// TruckID returns the truck to complete.
func (c MarkDoneCommand) TruckID() kernel.UUID {
	return c.truckID
}

// ActorID returns the primary handler's identifier.
func (c MarkDoneCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorName returns the primary handler's display name.
func (c MarkDoneCommand) ActorName() string {
	return c.actorName
}

// HelperID returns the optional helper's identifier.
func (c MarkDoneCommand) HelperID() *kernel.UUID {
	return c.helperID
}

// HelperName returns the optional helper's display name.
func (c MarkDoneCommand) HelperName() string {
	return c.helperName
}

// Role returns the acting session's role.
func (c MarkDoneCommand) Role() policy.Role {
	return c.role
}
