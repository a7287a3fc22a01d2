package commands

import (
	"errors"

	"dockyard/internal/pkg/guard"
)

var ErrSweepOverdueTrucksCommandIsNotConstructed = errors.New(
	"SweepOverdueTrucksCommand must be created via NewSweepOverdueTrucksCommand constructor",
)

// SweepOverdueTrucksCommand flags trucks that missed their booked arrival.
// This is a parameterless command driven by the background sweep job.
type SweepOverdueTrucksCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepOverdueTrucksCommand creates an overdue sweep command.
func NewSweepOverdueTrucksCommand() SweepOverdueTrucksCommand {
	return SweepOverdueTrucksCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SweepOverdueTrucksCommand) Validate() error {
	return c.guard.Validate(ErrSweepOverdueTrucksCommandIsNotConstructed)
}
