package exception

import (
	"fmt"

	"dockyard/internal/pkg/errs"
)

// Type classifies the operational issue reported against a truck.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// TypeDamage covers damaged cargo, pallets or vehicle.
	TypeDamage

	// TypeDelay covers late arrivals and slow handling.
	TypeDelay

	// TypeDocumentation covers missing or incorrect paperwork.
	TypeDocumentation

	// TypeOther covers everything not matching a dedicated category.
	TypeOther
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:       "Unknown",
		TypeDamage:        "Damage",
		TypeDelay:         "Delay",
		TypeDocumentation: "Documentation",
		TypeOther:         "Other",
	}
}

// Validate checks if the Type is one of the defined categories.
func (t Type) Validate() error {
	if t < TypeDamage || t > TypeOther {
		return errs.NewValueIsInvalidErrorWithCause(
			"exception type is invalid", fmt.Errorf("%d is not a valid type", t))
	}
	return nil
}

// String returns the human-readable name of the type.
// Implements the fmt.Stringer interface.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
