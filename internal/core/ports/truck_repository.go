// Package ports defines repository and gateway interfaces for the dock yard
// core. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"
)

// TruckRepository defines the persistence contract for truck aggregates.
// The remote store is the source of truth; the in-process view is a
// synchronized cache refreshed through change notifications.
type TruckRepository interface {
	// Add persists a new truck aggregate to storage.
	// The truck must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *truck.Truck) error

	// Update persists changes to an existing truck aggregate.
	// The truck must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *truck.Truck) error

	// Get retrieves a truck aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error)

	// LockRampForAssignment takes a store-side lock on the ramp that lasts
	// until the current transaction ends. Assignments racing the same ramp
	// serialize here; the loser's subsequent GetActiveOnRamp sees the
	// winner's committed row. Must be called inside a unit of work.
	LockRampForAssignment(ctx context.Context, ramp truck.RampNumber) error

	// GetActiveOnRamp retrieves every non-completed truck holding the given
	// ramp number. Used by the ramp allocator to test slot availability.
	GetActiveOnRamp(ctx context.Context, ramp truck.RampNumber) ([]*truck.Truck, error)

	// GetScheduledBetween retrieves trucks whose scheduled arrival falls in
	// [from, to). Used by day views and the ramp board.
	GetScheduledBetween(ctx context.Context, from, to time.Time) ([]*truck.Truck, error)

	// Delete removes a truck record permanently. Reserved to the
	// highest-privilege role; completed trucks normally persist as history.
	Delete(ctx context.Context, id kernel.UUID) error
}
