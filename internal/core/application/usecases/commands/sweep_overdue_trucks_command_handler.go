package commands

import (
	"context"
	"time"

	"dockyard/internal/core/domain/model/truck"
)

const (
	// overdueGrace is how far past its booked arrival a truck may run
	// before the sweep flags it.
	overdueGrace = 30 * time.Minute

	// overdueLookback bounds the sweep window so ancient no-show bookings
	// are not reflagged forever.
	overdueLookback = 24 * time.Hour
)

// SweepOverdueTrucksCommandHandler flags still-scheduled trucks whose
// booked arrival has passed the grace period. A flagged truck may be
// rescheduled by any role; the flag clears on reschedule.
type SweepOverdueTrucksCommandHandler struct {
	uowFactory TruckUoWFactory

	now func() time.Time
}

// NewSweepOverdueTrucksCommandHandler creates a handler for the overdue
// sweep.
func NewSweepOverdueTrucksCommandHandler(uowFactory TruckUoWFactory) SweepOverdueTrucksCommandHandler {
	return SweepOverdueTrucksCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// WithClock returns a copy of the handler using the given clock.
func (h SweepOverdueTrucksCommandHandler) WithClock(now func() time.Time) SweepOverdueTrucksCommandHandler {
	h.now = now
	return h
}

// Handle runs one sweep. Returns the first persistence error encountered;
// trucks already flagged are left untouched.
func (h SweepOverdueTrucksCommandHandler) Handle(ctx context.Context, cmd SweepOverdueTrucksCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	truckRepo := uow.TruckRepository()

	trucks, err := truckRepo.GetScheduledBetween(ctx, now.Add(-overdueLookback), now.Add(-overdueGrace))
	if err != nil {
		return err
	}

	for _, candidate := range trucks {
		if candidate.Status() != truck.Scheduled || candidate.IsOverdue() {
			continue
		}

		candidate.SetOverdue(true)
		if err = truckRepo.Update(ctx, candidate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
