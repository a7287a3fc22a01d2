package commands

import (
	"errors"

	"dockyard/internal/core/application/policy"
	"dockyard/internal/core/domain/model/exception"
	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/pkg/errs"
	"dockyard/internal/pkg/guard"
)

var ErrUpdateExceptionStatusCommandIsNotConstructed = errors.New(
	"UpdateExceptionStatusCommand must be created via NewUpdateExceptionStatusCommand constructor",
)

// UpdateExceptionStatusCommand represents moving an exception through its
// handling lifecycle. A transition to Resolved requires the resolver
// identity; resolution metadata is stamped exactly once.
type UpdateExceptionStatusCommand struct { //nolint:recvcheck //using for validation
	exceptionID kernel.UUID
	newStatus   exception.Status
	resolvedBy  *kernel.UUID
	role        policy.Role

	guard guard.ConstructorGuard
}

// NewUpdateExceptionStatusCommand creates a status update command.
func NewUpdateExceptionStatusCommand(
	exceptionID kernel.UUID,
	newStatus exception.Status,
	resolvedBy *kernel.UUID,
	role policy.Role,
) (UpdateExceptionStatusCommand, error) {
	if err := errors.Join(
		exceptionID.Validate(),
		newStatus.Validate(),
		role.Validate(),
	); err != nil {
		return UpdateExceptionStatusCommand{}, err
	}
	if newStatus == exception.StatusResolved && resolvedBy == nil {
		return UpdateExceptionStatusCommand{}, errs.NewValueIsRequiredError("resolved by")
	}
	if resolvedBy != nil {
		if err := resolvedBy.Validate(); err != nil {
			return UpdateExceptionStatusCommand{}, err
		}
	}

	return UpdateExceptionStatusCommand{
		exceptionID: exceptionID,
		newStatus:   newStatus,
		resolvedBy:  resolvedBy,
		role:        role,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateExceptionStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateExceptionStatusCommandIsNotConstructed)
}

// ExceptionID returns the exception to update.
func (c UpdateExceptionStatusCommand) ExceptionID() kernel.UUID {
	return c.exceptionID
}

// NewStatus returns the requested handling status.
func (c UpdateExceptionStatusCommand) NewStatus() exception.Status {
	return c.newStatus
}

// ResolvedBy returns the resolver identity, required for Resolved.
func (c UpdateExceptionStatusCommand) ResolvedBy() *kernel.UUID {
	return c.resolvedBy
}

// Role returns the acting session's role.
func (c UpdateExceptionStatusCommand) Role() policy.Role {
	return c.role
}
