package truck

import (
	"fmt"
	"regexp"

	"dockyard/internal/pkg/errs"
	"dockyard/internal/pkg/guard"
)

const (
	licensePlateMinLength = 1
	licensePlateMaxLength = 20
)

// licensePlateRegexp accepts upper-case letters, digits, dashes and spaces,
// the character set used on the plates the yard serves.
var licensePlateRegexp = regexp.MustCompile(`^[A-ZÅÄÖ0-9][A-ZÅÄÖ0-9\- ]*$`)

// ErrLicensePlateIsNotConstructed is returned when attempting to use an
// improperly initialized LicensePlate.
var ErrLicensePlateIsNotConstructed = errs.NewValueIsRequiredError(
	"license plate must be created via NewLicensePlate constructor")

// LicensePlate is the registration identifier of a truck.
// It is an immutable value object validated against length limits and the
// accepted character pattern. The zero value is invalid.
type LicensePlate struct {
	value string
	guard guard.ConstructorGuard
}

// NewLicensePlate creates a LicensePlate from its string form.
// The value must be 1-20 characters and match the accepted pattern.
//
// Example:
//
//	plate, err := truck.NewLicensePlate("ABC-123")
//	if err != nil {
//	    // Handle validation error
//	}
func NewLicensePlate(value string) (LicensePlate, error) {
	if value == "" {
		return LicensePlate{}, errs.NewValueIsRequiredError("license plate")
	}
	if len([]rune(value)) > licensePlateMaxLength {
		return LicensePlate{}, errs.NewValueIsOutOfRangeError(
			"license plate length", len([]rune(value)), licensePlateMinLength, licensePlateMaxLength)
	}
	if !licensePlateRegexp.MatchString(value) {
		return LicensePlate{}, errs.NewValueIsInvalidErrorWithCause(
			"license plate", fmt.Errorf("%q does not match the accepted plate pattern", value))
	}

	return LicensePlate{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the LicensePlate was properly constructed.
func (p LicensePlate) Validate() error {
	return p.guard.Validate(ErrLicensePlateIsNotConstructed)
}

// String returns the plate text. Implements fmt.Stringer.
func (p LicensePlate) String() string {
	return p.value
}

// IsEqual compares two plates by their text.
func (p LicensePlate) IsEqual(other LicensePlate) bool {
	return p.value == other.value
}
