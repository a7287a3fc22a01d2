package ports

import (
	"context"
	"time"

	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"
)

// PhotoCompliance summarizes the photo documentation recorded for a truck.
// It is consumed read-only by reporting surfaces and never gates the Done
// transition.
type PhotoCompliance struct {
	TruckID         kernel.UUID
	RequiredCovered int
	RequiredTotal   int
	Score           float64
}

// StoreProcedures groups the server-side procedures the core invokes on the
// remote store. The procedures are opaque: the core supplies inputs and
// awaits a success/failure result; their internals are out of scope.
//
// Callers wrap every invocation in a bounded context deadline; the store
// itself defines no timeout.
type StoreProcedures interface {
	// HandleTruckArrival atomically records the truck's actual arrival.
	// The core calls it instead of writing arrival fields directly.
	HandleTruckArrival(ctx context.Context, truckID kernel.UUID, userID kernel.UUID) error

	// HandleTruckStatusChange applies a status change server-side. Used for
	// the Done transition.
	HandleTruckStatusChange(ctx context.Context, truckID kernel.UUID, newStatus truck.Status, userID kernel.UUID) error

	// RescheduleOverdueTruck moves a truck's booking server-side, carrying
	// the reason for the audit trail.
	RescheduleOverdueTruck(
		ctx context.Context,
		truckID kernel.UUID,
		newArrival time.Time,
		reason string,
		userID kernel.UUID,
	) error

	// RefreshUserKPIMetrics recomputes daily aggregate metrics for the given
	// date. Invoked after handler records are durably written on completion;
	// the causal order avoids under- or double-counting a truck.
	RefreshUserKPIMetrics(ctx context.Context, targetDate time.Time) error

	// CheckTruckPhotoCompliance returns the compliance summary for a truck.
	CheckTruckPhotoCompliance(ctx context.Context, truckID kernel.UUID) (PhotoCompliance, error)
}
