package exception

import (
	"fmt"

	"dockyard/internal/pkg/errs"
)

// Status represents the handling state of an operational exception.
// Transitions are forward-biased:
//
//	Pending ──> InProgress ──> Resolved
//	    │            │
//	    └──> Escalated ──> Resolved
//
// Resolved is reachable from any non-terminal state and is terminal:
// a resolved exception is never reopened or re-stamped.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly reported exception.
	StatusPending

	// StatusInProgress indicates someone is actively working the issue.
	StatusInProgress

	// StatusEscalated indicates the issue was raised to a supervisor.
	StatusEscalated

	// StatusResolved is the terminal status. Resolution metadata is stamped
	// exactly once when this status is reached.
	StatusResolved
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "Pending",
		StatusInProgress: "InProgress",
		StatusEscalated:  "Escalated",
		StatusResolved:   "Resolved",
	}
}

// Validate checks if the Status is one of the defined handling states.
func (s Status) Validate() error {
	if s < StatusPending || s > StatusResolved {
		return errs.NewValueIsInvalidErrorWithCause(
			"exception status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is Resolved.
func (s Status) IsTerminal() bool {
	return s == StatusResolved
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Backward moves and any move out of Resolved are rejected; Resolved is
// reachable from every non-terminal state.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if next == StatusResolved {
		return true
	}

	switch s {
	case StatusPending:
		return next == StatusInProgress || next == StatusEscalated
	case StatusInProgress:
		return next == StatusEscalated
	default:
		return false
	}
}
