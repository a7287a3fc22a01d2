package queries

import (
	"errors"
	"time"

	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"
	"dockyard/internal/pkg/errs"
	"dockyard/internal/pkg/guard"
)

var ErrGetTrucksForDateQueryIsNotConstructed = errors.New(
	"GetTrucksForDateQuery must be created via NewGetTrucksForDateQuery constructor",
)

// GetTrucksForDateQuery retrieves every booking scheduled on a calendar day.
type GetTrucksForDateQuery struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetTrucksForDateQuery creates a day listing query. The time-of-day part
// of date is ignored; the day is taken in the date's own location.
func NewGetTrucksForDateQuery(date time.Time) (GetTrucksForDateQuery, error) {
	if date.IsZero() {
		return GetTrucksForDateQuery{}, errs.NewValueIsRequiredError("date")
	}

	return GetTrucksForDateQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrucksForDateQuery) Validate() error {
	return q.guard.Validate(ErrGetTrucksForDateQueryIsNotConstructed)
}

// Date returns the requested day.
func (q GetTrucksForDateQuery) Date() time.Time {
	return q.date
}

// GetTrucksForDateQueryResponse represents one booking on the day view.
type GetTrucksForDateQueryResponse struct {
	ID               kernel.UUID
	Plate            string
	ScheduledArrival time.Time
	ActualArrival    *time.Time
	Ramp             *truck.RampNumber
	Status           truck.Status
	Priority         truck.Priority
	RescheduleCount  int
	IsOverdue        bool
}
