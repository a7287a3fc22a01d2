package commands

import (
	"context"
	"time"

	"dockyard/internal/core/application/policy"
	"dockyard/internal/pkg/inflight"
)

// StartWorkCommandHandler processes the Arrived -> InProgress transition.
// Records which handler took the truck and when, in a single transaction.
type StartWorkCommandHandler struct {
	uowFactory TruckUoWFactory
	tracker    *inflight.Tracker
	policy     policy.Policy
}

// NewStartWorkCommandHandler creates a handler for the start-work transition.
func NewStartWorkCommandHandler(
	uowFactory TruckUoWFactory,
	tracker *inflight.Tracker,
	pol policy.Policy,
) StartWorkCommandHandler {
	return StartWorkCommandHandler{
		uowFactory: uowFactory,
		tracker:    tracker,
		policy:     pol,
	}
}

// Handle processes the transition. Only the operational role may advance
// the pipeline; duplicate submits are rejected by the in-flight marker.
func (h StartWorkCommandHandler) Handle(ctx context.Context, cmd StartWorkCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Check(cmd.Role(), policy.CapAdvanceStatus); err != nil {
		return err
	}

	if !h.tracker.TryAcquire(cmd.TruckID().String(), opStartWork) {
		return ErrOperationInFlight
	}
	defer h.tracker.Release(cmd.TruckID().String(), opStartWork)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	truckRepo := uow.TruckRepository()

	current, err := truckRepo.Get(ctx, cmd.TruckID())
	if err != nil {
		return err
	}

	if err = current.StartWork(cmd.ActorID(), cmd.ActorName(), time.Now()); err != nil {
		return err
	}

	if err = truckRepo.Update(ctx, current); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
