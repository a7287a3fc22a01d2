package truck

import (
	"fmt"

	"dockyard/internal/pkg/errs"
)

// Priority ranks how urgently a truck must be handled.
// Higher values take precedence on ramp-occupancy displays and exception
// triage; the value does not influence ramp availability itself.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityLow marks trucks that can wait without operational impact.
	PriorityLow

	// PriorityNormal is the default for regular scheduled traffic.
	PriorityNormal

	// PriorityHigh marks trucks with time-critical cargo.
	PriorityHigh

	// PriorityUrgent marks trucks that must be handled ahead of anything else.
	PriorityUrgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "Unknown",
		PriorityLow:     "Low",
		PriorityNormal:  "Normal",
		PriorityHigh:    "High",
		PriorityUrgent:  "Urgent",
	}
}

// Validate checks if the Priority is one of the four defined levels.
func (p Priority) Validate() error {
	if p < PriorityLow || p > PriorityUrgent {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the human-readable name of the priority.
// Implements the fmt.Stringer interface.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
