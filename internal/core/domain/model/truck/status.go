package truck

import (
	"fmt"

	"dockyard/internal/pkg/errs"
)

// Status represents the lifecycle state of a truck visit.
// It implements a strictly forward state machine:
//
//	Scheduled ──> Arrived ──> InProgress ──> Done
//
// No transition skips a state and no transition reverses. Done is terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Scheduled is the initial status: the truck is booked but has not
	// physically arrived at the yard.
	Scheduled

	// Arrived indicates the truck has checked in at the gate. Its actual
	// arrival time is recorded on this transition.
	Arrived

	// InProgress indicates a warehouse handler has started loading or
	// unloading the truck.
	InProgress

	// Done indicates handling finished. This is a final state; completed
	// trucks remain as historical records.
	Done
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Scheduled:  "Scheduled",
		Arrived:    "Arrived",
		InProgress: "InProgress",
		Done:       "Done",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Scheduled:  "Scheduled",
		Arrived:    "Arrived",
		InProgress: "InProgress",
		Done:       "Done",
	}
}

// Validate checks if the Status value is one of the four lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is Done, the only terminal state.
// Only non-terminal trucks count toward ramp occupancy.
func (s Status) IsTerminal() bool {
	return s == Done
}

// Arrive transitions the status to Arrived.
//
// Valid transitions:
//   - Scheduled -> Arrived
//
// Returns:
//   - (Arrived, nil) on valid transition
//   - (0, error) if the truck is not in Scheduled status
func (s Status) Arrive() (Status, error) {
	if s != Scheduled {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to mark arrived", s.String()),
		)
	}

	return Arrived, nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Arrived -> InProgress
//
// Returns:
//   - (InProgress, nil) on valid transition
//   - (0, error) if the truck has not arrived yet or is already being handled
func (s Status) Start() (Status, error) {
	if s != Arrived {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start work", s.String()),
		)
	}

	return InProgress, nil
}

// Complete transitions the status to Done.
//
// Valid transitions:
//   - InProgress -> Done
//
// Returns:
//   - (Done, nil) on valid transition
//   - (0, error) if handling was never started or the truck is already Done
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Done, nil
}
