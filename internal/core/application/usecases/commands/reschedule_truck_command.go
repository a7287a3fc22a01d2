package commands

import (
	"errors"
	"time"

	"dockyard/internal/core/application/policy"
	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/pkg/errs"
	"dockyard/internal/pkg/guard"
)

const rescheduleReasonMaxLength = 500

var ErrRescheduleTruckCommandIsNotConstructed = errors.New(
	"RescheduleTruckCommand must be created via NewRescheduleTruckCommand constructor",
)

// RescheduleTruckCommand represents moving a truck's booked arrival.
// Rescheduling never changes the truck's status; it only moves the
// scheduling fields and maintains the audit trail (original arrival,
// reschedule count) while clearing the overdue flag.
type RescheduleTruckCommand struct { //nolint:recvcheck //using for validation
	truckID    kernel.UUID
	newArrival time.Time
	reason     string
	actorID    kernel.UUID
	role       policy.Role

	guard guard.ConstructorGuard
}

// NewRescheduleTruckCommand creates a reschedule command. The reason is
// optional but limited to 500 characters; the future-moment precondition is
// checked in the handler against the current clock.
func NewRescheduleTruckCommand(
	truckID kernel.UUID,
	newArrival time.Time,
	reason string,
	actorID kernel.UUID,
	role policy.Role,
) (RescheduleTruckCommand, error) {
	if err := errors.Join(
		truckID.Validate(),
		actorID.Validate(),
		role.Validate(),
	); err != nil {
		return RescheduleTruckCommand{}, err
	}
	if newArrival.IsZero() {
		return RescheduleTruckCommand{}, errs.NewValueIsRequiredError("new arrival")
	}
	if len([]rune(reason)) > rescheduleReasonMaxLength {
		return RescheduleTruckCommand{}, errs.NewValueIsOutOfRangeError(
			"reason length", len([]rune(reason)), 0, rescheduleReasonMaxLength)
	}

	return RescheduleTruckCommand{
		truckID:    truckID,
		newArrival: newArrival,
		reason:     reason,
		actorID:    actorID,
		role:       role,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RescheduleTruckCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleTruckCommandIsNotConstructed)
}

// TruckID returns the truck to reschedule.
func (c RescheduleTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

// NewArrival returns the requested new arrival moment.
func (c RescheduleTruckCommand) NewArrival() time.Time {
	return c.newArrival
}

// Reason returns the optional reschedule reason.
func (c RescheduleTruckCommand) Reason() string {
	return c.reason
}

// ActorID returns the acting user's identifier.
func (c RescheduleTruckCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Role returns the acting session's role.
func (c RescheduleTruckCommand) Role() policy.Role {
	return c.role
}
