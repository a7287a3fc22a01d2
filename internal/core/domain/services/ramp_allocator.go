package services

import (
	"time"

	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"
)

// RampAllocator is a domain service responsible for the ramp-exclusivity
// invariant: a ramp holds at most one truck per 50-minute slot, so no two
// non-completed trucks on the same ramp may have overlapping windows.
//
// The invariant spans multiple trucks, which is why it lives in a service
// rather than in the Truck aggregate.
//
// Business rules:
//   - Only ramps in the declared loading/unloading pools are considered
//   - Completed (Done) trucks never block a ramp
//   - An occupant's window starts at its actual arrival when it has checked
//     in, and at its scheduled arrival otherwise
//   - Windows are half-open: a slot starting exactly when another ends is free
//
// Example usage:
//
//	allocator := services.NewRampAllocator()
//	free, err := allocator.IsRampAvailable(ramp, candidateAt, occupants)
//	if err != nil {
//	    // Ramp outside the pool or corrupt occupant state
//	}
//	if !free {
//	    // Ramp is double-booked for that window
//	}
type RampAllocator struct{}

// NewRampAllocator creates a new RampAllocator instance.
func NewRampAllocator() RampAllocator {
	return RampAllocator{}
}

// IsRampAvailable reports whether the ramp is free for a 50-minute slot
// starting at the candidate time, given every truck currently holding that
// ramp. Trucks on other ramps or in Done status are ignored.
//
// Parameters:
//   - ramp: The candidate dock (must be in the assignable pool)
//   - candidateAt: Start of the requested slot
//   - occupants: Trucks to check against, typically all active trucks on the ramp
//
// Returns:
//   - bool: true when no occupant's window overlaps the candidate window
//   - error: validation error for an out-of-pool ramp or invalid occupant
func (a RampAllocator) IsRampAvailable(
	ramp truck.RampNumber,
	candidateAt time.Time,
	occupants []*truck.Truck,
) (bool, error) {
	if err := ramp.Validate(); err != nil {
		return false, err
	}

	candidateSlot, err := kernel.NewSlot(candidateAt)
	if err != nil {
		return false, err
	}

	for _, occupant := range occupants {
		if err = occupant.Validate(); err != nil {
			return false, err
		}
		if occupant.Status().IsTerminal() {
			continue
		}
		if occupant.Ramp() == nil || *occupant.Ramp() != ramp {
			continue
		}

		occupantSlot, slotErr := occupant.Slot()
		if slotErr != nil {
			return false, slotErr
		}
		if candidateSlot.Overlaps(occupantSlot) {
			return false, nil
		}
	}

	return true, nil
}

// IsRampAvailableFor checks availability for a specific candidate truck's
// own window, excluding the candidate from the occupant set so a truck never
// conflicts with itself when its ramp is re-confirmed.
func (a RampAllocator) IsRampAvailableFor(
	ramp truck.RampNumber,
	candidate *truck.Truck,
	occupants []*truck.Truck,
) (bool, error) {
	if err := candidate.Validate(); err != nil {
		return false, err
	}

	others := make([]*truck.Truck, 0, len(occupants))
	for _, occupant := range occupants {
		if occupant != nil && occupant.IsEqual(candidate) {
			continue
		}
		others = append(others, occupant)
	}

	candidateSlot, err := candidate.Slot()
	if err != nil {
		return false, err
	}

	return a.IsRampAvailable(ramp, candidateSlot.Start(), others)
}
