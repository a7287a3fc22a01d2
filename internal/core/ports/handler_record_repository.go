package ports

import (
	"context"

	"dockyard/internal/core/domain/model/kernel"
)

// HandlerRecord credits one staff member with processing a completed truck.
// Exactly one row is written per contributor: the primary handler always,
// plus one for the helper when a helper took part.
type HandlerRecord struct {
	TruckID     kernel.UUID
	HandlerID   kernel.UUID
	HandlerName string
}

// HandlerRecordRepository defines the persistence contract for the
// truck_handlers collection.
type HandlerRecordRepository interface {
	// Add inserts one handler credit row.
	Add(ctx context.Context, record HandlerRecord) error

	// GetByTruck retrieves all handler credits for a truck.
	GetByTruck(ctx context.Context, truckID kernel.UUID) ([]HandlerRecord, error)
}
