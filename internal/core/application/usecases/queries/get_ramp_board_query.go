package queries

import (
	"errors"
	"time"

	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"
	"dockyard/internal/pkg/errs"
	"dockyard/internal/pkg/guard"
)

var ErrGetRampBoardQueryIsNotConstructed = errors.New(
	"GetRampBoardQuery must be created via NewGetRampBoardQuery constructor",
)

// RampState describes a dock ramp's occupancy at a moment in time.
type RampState string

const (
	// RampAvailable means no active booking touches the ramp.
	RampAvailable RampState = "AVAILABLE"
	// RampScheduled means a booking exists but the truck is not at the dock.
	RampScheduled RampState = "SCHEDULED"
	// RampOccupied means an arrived or in-progress truck holds the ramp.
	RampOccupied RampState = "OCCUPIED"
)

// GetRampBoardQuery retrieves the occupancy state of every assignable ramp
// at a given moment. Used by the dock overview screen.
//
// Example:
//
//	query, err := NewGetRampBoardQuery(time.Now())
//	if err != nil {
//	    return err
//	}
//
//	board, err := handler.Handle(ctx, query)
//	for _, entry := range board {
//	    fmt.Printf("%s: %s\n", entry.Ramp, entry.State)
//	}
type GetRampBoardQuery struct {
	at time.Time

	guard guard.ConstructorGuard
}

// NewGetRampBoardQuery creates a ramp board query evaluated at the given
// moment.
func NewGetRampBoardQuery(at time.Time) (GetRampBoardQuery, error) {
	if at.IsZero() {
		return GetRampBoardQuery{}, errs.NewValueIsRequiredError("at")
	}

	return GetRampBoardQuery{
		at:    at,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRampBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetRampBoardQueryIsNotConstructed)
}

// At returns the moment the board is evaluated for.
func (q GetRampBoardQuery) At() time.Time {
	return q.at
}

// GetRampBoardQueryResponse represents one ramp on the board. TruckID and
// Plate describe the truck responsible for a SCHEDULED or OCCUPIED state
// and are empty for AVAILABLE ramps.
type GetRampBoardQueryResponse struct {
	Ramp    truck.RampNumber
	State   RampState
	TruckID *kernel.UUID
	Plate   string
}
