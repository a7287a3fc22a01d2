package commands

import (
	"context"
	"time"

	"dockyard/internal/core/application/policy"
	"dockyard/internal/core/ports"
)

// RescheduleTruckCommandHandler moves a truck's booking through the store's
// reschedule_overdue_truck procedure.
//
// The handler validates the full reschedule against the domain before the
// remote call: the new moment must be strictly in the future, the truck
// must not be completed, and the acting role must either hold the
// reschedule capability or be acting on a truck the surrounding system has
// flagged overdue. The procedure then performs the authoritative write
// (original arrival captured once, count incremented, overdue cleared); on
// failure the local registry stays unmodified.
type RescheduleTruckCommandHandler struct {
	uowFactory TruckUoWFactory
	procedures ports.StoreProcedures
	policy     policy.Policy
	timeout    time.Duration

	// now is replaceable for tests of the future-moment precondition.
	now func() time.Time
}

// NewRescheduleTruckCommandHandler creates a handler for rescheduling.
func NewRescheduleTruckCommandHandler(
	uowFactory TruckUoWFactory,
	procedures ports.StoreProcedures,
	pol policy.Policy,
) RescheduleTruckCommandHandler {
	return RescheduleTruckCommandHandler{
		uowFactory: uowFactory,
		procedures: procedures,
		policy:     pol,
		timeout:    DefaultProcedureTimeout,
		now:        time.Now,
	}
}

// WithClock returns a copy of the handler using the given clock.
func (h RescheduleTruckCommandHandler) WithClock(now func() time.Time) RescheduleTruckCommandHandler {
	h.now = now
	return h
}

// Handle processes the reschedule.
func (h RescheduleTruckCommandHandler) Handle(ctx context.Context, cmd RescheduleTruckCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, err := uow.TruckRepository().Get(ctx, cmd.TruckID())
	if err != nil {
		return err
	}

	if err = h.policy.CheckReschedule(cmd.Role(), current.IsOverdue()); err != nil {
		return err
	}

	// Dry-run the domain transition on the loaded copy: this enforces the
	// future-moment rule and the completed-truck rule without mutating the
	// store. The procedure performs the authoritative write.
	if err = current.Reschedule(cmd.NewArrival(), h.now()); err != nil {
		return err
	}

	procCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err = h.procedures.RescheduleOverdueTruck(
		procCtx, cmd.TruckID(), cmd.NewArrival(), cmd.Reason(), cmd.ActorID(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
