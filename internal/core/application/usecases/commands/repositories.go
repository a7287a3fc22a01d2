// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// capability check, transaction management, and persistence.
package commands

import (
	"context"

	"dockyard/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TruckRepoFactory provides access to the truck repository within a transaction.
	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	// ExceptionRepoFactory provides access to the exception repository within a transaction.
	ExceptionRepoFactory interface {
		ExceptionRepository() ports.ExceptionRepository
	}

	// HandlerRecordRepoFactory provides access to the handler credit repository within a transaction.
	HandlerRecordRepoFactory interface {
		HandlerRecordRepository() ports.HandlerRecordRepository
	}

	// TruckUoW manages transactions for truck-only operations.
	TruckUoW interface {
		TxManager
		TruckRepoFactory
	}

	// TruckUoWFactory creates new truck unit of work instances.
	TruckUoWFactory interface {
		Create() TruckUoW
	}

	// ExceptionUoW manages transactions for exception-only operations.
	ExceptionUoW interface {
		TxManager
		ExceptionRepoFactory
	}

	// ExceptionUoWFactory creates new exception unit of work instances.
	ExceptionUoWFactory interface {
		Create() ExceptionUoW
	}

	// CompletionUoW manages transactions for the completion path, which
	// writes the truck's handler credit rows in one transaction.
	CompletionUoW interface {
		TxManager
		TruckRepoFactory
		HandlerRecordRepoFactory
	}

	// CompletionUoWFactory creates new completion unit of work instances.
	CompletionUoWFactory interface {
		Create() CompletionUoW
	}
)
