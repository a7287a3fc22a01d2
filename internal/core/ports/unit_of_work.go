package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and access to the repositories bound to
// that transaction. Client code must explicitly manage the transaction
// lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// TruckRepository returns a TruckRepository bound to the current
	// transaction started by Begin().
	TruckRepository() TruckRepository

	// ExceptionRepository returns an ExceptionRepository bound to the
	// current transaction.
	ExceptionRepository() ExceptionRepository

	// HandlerRecordRepository returns a HandlerRecordRepository bound to the
	// current transaction.
	HandlerRecordRepository() HandlerRecordRepository
}
