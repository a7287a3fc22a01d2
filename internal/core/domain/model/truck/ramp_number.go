package truck

import (
	"fmt"

	"dockyard/internal/pkg/errs"
)

// Ramp pool boundaries. The yard has nine numbered docks: ramps 1-4 handle
// unloading, ramps 6-9 handle loading, and ramp 5 is the service bay and is
// never assignable to a truck.
const (
	UnloadingRampMin RampNumber = 1
	UnloadingRampMax RampNumber = 4
	ServiceBayRamp   RampNumber = 5
	LoadingRampMin   RampNumber = 6
	LoadingRampMax   RampNumber = 9
)

// ErrRampNotAssignable is returned when a ramp number falls outside the
// loading and unloading pools, including the excluded service bay.
var ErrRampNotAssignable = errs.NewValueIsInvalidError("ramp number is not in the assignable pool")

// RampNumber identifies a physical loading or unloading dock.
// It is a value object restricted to the declared ramp pools; any number
// outside them (notably the service bay, ramp 5) cannot be constructed.
//
// Example:
//
//	ramp, err := truck.NewRampNumber(3)
//	if err != nil {
//	    // Handle out-of-pool ramp
//	}
//	fmt.Println(ramp.IsUnloading()) // true
type RampNumber int

// NewRampNumber creates a RampNumber after checking it belongs to one of
// the two assignable pools.
//
// Returns:
//   - RampNumber: the validated ramp number
//   - error: ErrRampNotAssignable if the number is outside both pools
func NewRampNumber(number int) (RampNumber, error) {
	ramp := RampNumber(number)
	if err := ramp.Validate(); err != nil {
		return 0, err
	}
	return ramp, nil
}

// Validate checks that the ramp belongs to the unloading pool (1-4) or the
// loading pool (6-9). The service bay and every other number are rejected.
func (r RampNumber) Validate() error {
	if r.IsUnloading() || r.IsLoading() {
		return nil
	}
	return ErrRampNotAssignable
}

// IsUnloading reports whether the ramp belongs to the unloading pool.
func (r RampNumber) IsUnloading() bool {
	return r >= UnloadingRampMin && r <= UnloadingRampMax
}

// IsLoading reports whether the ramp belongs to the loading pool.
func (r RampNumber) IsLoading() bool {
	return r >= LoadingRampMin && r <= LoadingRampMax
}

// String returns a human-readable representation, e.g. "Ramp 3".
func (r RampNumber) String() string {
	return fmt.Sprintf("Ramp %d", int(r))
}

// AssignableRamps returns every ramp number a truck may be assigned to,
// in ascending order. Used by ramp board queries to render the full yard.
func AssignableRamps() []RampNumber {
	ramps := make([]RampNumber, 0, int(UnloadingRampMax-UnloadingRampMin)+int(LoadingRampMax-LoadingRampMin)+2)
	for r := UnloadingRampMin; r <= UnloadingRampMax; r++ {
		ramps = append(ramps, r)
	}
	for r := LoadingRampMin; r <= LoadingRampMax; r++ {
		ramps = append(ramps, r)
	}
	return ramps
}
