package ports

import (
	"context"

	"dockyard/internal/core/domain/model/exception"
	"dockyard/internal/core/domain/model/kernel"
)

// ExceptionRepository defines the persistence contract for exception
// aggregates in the truck_exceptions collection.
type ExceptionRepository interface {
	// Add persists a new exception record.
	Add(ctx context.Context, aggregate *exception.Exception) error

	// Update persists changes to an existing exception record.
	Update(ctx context.Context, aggregate *exception.Exception) error

	// Get retrieves an exception by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*exception.Exception, error)

	// GetByTruck retrieves all exceptions reported against a truck.
	GetByTruck(ctx context.Context, truckID kernel.UUID) ([]*exception.Exception, error)
}
