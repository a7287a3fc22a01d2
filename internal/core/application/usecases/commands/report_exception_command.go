package commands

import (
	"errors"
	"time"

	"dockyard/internal/core/application/policy"
	"dockyard/internal/core/domain/model/exception"
	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"
	"dockyard/internal/pkg/guard"
)

var ErrReportExceptionCommandIsNotConstructed = errors.New(
	"ReportExceptionCommand must be created via NewReportExceptionCommand constructor",
)

// ReportExceptionCommand represents recording an operational issue against
// a truck. The exception is created in Pending status.
type ReportExceptionCommand struct { //nolint:recvcheck //using for validation
	exceptionID         kernel.UUID
	truckID             kernel.UUID
	exceptionType       exception.Type
	reason              string
	priority            truck.Priority
	estimatedResolution *time.Time
	actorID             kernel.UUID
	role                policy.Role

	guard guard.ConstructorGuard
}

// NewReportExceptionCommand creates an exception report command. Reason and
// type validation live in the Exception constructor; this command validates
// the identities and role.
func NewReportExceptionCommand(
	exceptionID, truckID kernel.UUID,
	exceptionType exception.Type,
	reason string,
	priority truck.Priority,
	estimatedResolution *time.Time,
	actorID kernel.UUID,
	role policy.Role,
) (ReportExceptionCommand, error) {
	if err := errors.Join(
		exceptionID.Validate(),
		truckID.Validate(),
		actorID.Validate(),
		role.Validate(),
	); err != nil {
		return ReportExceptionCommand{}, err
	}

	return ReportExceptionCommand{
		exceptionID:         exceptionID,
		truckID:             truckID,
		exceptionType:       exceptionType,
		reason:              reason,
		priority:            priority,
		estimatedResolution: estimatedResolution,
		actorID:             actorID,
		role:                role,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportExceptionCommand) Validate() error {
	return c.guard.Validate(ErrReportExceptionCommandIsNotConstructed)
}

// ExceptionID returns the identifier for the new exception record.
func (c ReportExceptionCommand) ExceptionID() kernel.UUID {
	return c.exceptionID
}

// TruckID returns the truck the issue is tied to.
func (c ReportExceptionCommand) TruckID() kernel.UUID {
	return c.truckID
}

// ExceptionType returns the issue category.
func (c ReportExceptionCommand) ExceptionType() exception.Type {
	return c.exceptionType
}

// Reason returns the free-text issue description.
func (c ReportExceptionCommand) Reason() string {
	return c.reason
}

// Priority returns the triage priority.
func (c ReportExceptionCommand) Priority() truck.Priority {
	return c.priority
}

// EstimatedResolution returns the optional resolution estimate.
func (c ReportExceptionCommand) EstimatedResolution() *time.Time {
	return c.estimatedResolution
}

// ActorID returns the reporting user's identifier.
func (c ReportExceptionCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Role returns the acting session's role.
func (c ReportExceptionCommand) Role() policy.Role {
	return c.role
}
