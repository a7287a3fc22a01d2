package kernel

import (
	"fmt"
	"time"

	"dockyard/internal/pkg/errs"
	"dockyard/internal/pkg/guard"
)

// SlotDuration is the fixed length of a ramp slot. Every truck occupies its
// ramp for exactly this long, measured from its actual arrival when known
// and from its scheduled arrival otherwise.
const SlotDuration = 50 * time.Minute

// ErrSlotIsNotConstructed is returned when attempting to use an improperly
// initialized Slot. Slots must be created using the NewSlot constructor.
var ErrSlotIsNotConstructed = errs.NewValueIsRequiredError(
	"slot must be created via NewSlot constructor")

// Slot is the half-open time window [Start, Start+SlotDuration) during which
// a ramp is considered occupied by one truck. Slot is an immutable value
// object; the zero value is invalid and fails validation.
//
// Example:
//
//	slot, err := kernel.NewSlot(arrival)
//	if err != nil {
//	    // Handle validation error
//	}
//	if slot.Overlaps(other) {
//	    // Ramp is double-booked
//	}
type Slot struct {
	start time.Time
	guard guard.ConstructorGuard
}

// NewSlot creates a Slot starting at the given moment. The start time must
// not be the zero time.
//
// Returns:
//   - Slot: A valid slot covering [start, start+SlotDuration)
//   - error: Validation error if start is the zero time
func NewSlot(start time.Time) (Slot, error) {
	if start.IsZero() {
		return Slot{}, errs.NewValueIsRequiredError("slot start time")
	}

	return Slot{
		start: start,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Slot was properly constructed using NewSlot.
// The zero value of Slot is invalid and will fail this validation.
func (s Slot) Validate() error {
	return s.guard.Validate(ErrSlotIsNotConstructed)
}

// Start returns the beginning of the slot window.
func (s Slot) Start() time.Time {
	return s.start
}

// End returns the exclusive end of the slot window, Start+SlotDuration.
func (s Slot) End() time.Time {
	return s.start.Add(SlotDuration)
}

// Overlaps reports whether two slots intersect. The windows are half-open,
// so a slot that begins exactly when another ends does not overlap it.
//
// The test is the standard interval check: aStart < bEnd && aEnd > bStart.
//
// Example:
//
//	nine, _ := kernel.NewSlot(day.Add(9 * time.Hour))
//	nineThirty, _ := kernel.NewSlot(day.Add(9*time.Hour + 30*time.Minute))
//	nine.Overlaps(nineThirty) // true: 09:00-09:50 intersects 09:30-10:20
func (s Slot) Overlaps(other Slot) bool {
	return s.start.Before(other.End()) && s.End().After(other.start)
}

// String returns a human-readable representation of the slot window.
// This method implements the fmt.Stringer interface.
func (s Slot) String() string {
	return fmt.Sprintf("Slot(%s - %s)", s.start.Format("15:04"), s.End().Format("15:04"))
}
