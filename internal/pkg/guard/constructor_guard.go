// Package guard provides the constructor guard pattern used by value objects
// and commands throughout the application. Embedding a ConstructorGuard in a
// struct makes zero-value instances detectable, so objects that bypassed their
// constructor fail validation instead of silently carrying invalid state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value is "not constructed" and fails validation.
//
// Example usage:
//
//	type Slot struct {
//	    start time.Time
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSlot(start time.Time) (Slot, error) {
//	    return Slot{start: start, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s Slot) Validate() error {
//	    return s.guard.Validate(ErrSlotIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the embedding object as
// properly constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// For zero-value objects it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
