package commands

import (
	"context"
	"errors"
	"time"

	"dockyard/internal/core/application/policy"
	"dockyard/internal/core/ports"
	"dockyard/internal/pkg/inflight"
)

// DefaultProcedureTimeout bounds every server-side procedure call. The
// remote store defines no timeout of its own, so the deadline lives here.
const DefaultProcedureTimeout = 5 * time.Second

// Operation names used for per-truck in-flight markers.
const (
	opMarkArrived = "mark_arrived"
	opStartWork   = "start_work"
	opMarkDone    = "mark_done"
)

// ErrOperationInFlight is returned when the same operation on the same
// truck is already outstanding, typically a duplicate submit.
var ErrOperationInFlight = errors.New("operation is already in flight for this truck")

// MarkArrivedCommandHandler processes gate check-ins. The forward-only
// transition is validated against the registry's current state, then the
// arrival is recorded atomically by the store's handle_truck_arrival
// procedure; the core never writes arrival fields directly.
type MarkArrivedCommandHandler struct {
	uowFactory TruckUoWFactory
	procedures ports.StoreProcedures
	tracker    *inflight.Tracker
	policy     policy.Policy
	timeout    time.Duration
}

// NewMarkArrivedCommandHandler creates a handler for the arrival transition.
func NewMarkArrivedCommandHandler(
	uowFactory TruckUoWFactory,
	procedures ports.StoreProcedures,
	tracker *inflight.Tracker,
	pol policy.Policy,
) MarkArrivedCommandHandler {
	return MarkArrivedCommandHandler{
		uowFactory: uowFactory,
		procedures: procedures,
		tracker:    tracker,
		policy:     pol,
		timeout:    DefaultProcedureTimeout,
	}
}

// Handle processes the arrival. Only the operational role may advance the
// pipeline. A duplicate submit while the first call is outstanding returns
// ErrOperationInFlight without touching the store.
func (h MarkArrivedCommandHandler) Handle(ctx context.Context, cmd MarkArrivedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Check(cmd.Role(), policy.CapAdvanceStatus); err != nil {
		return err
	}

	if !h.tracker.TryAcquire(cmd.TruckID().String(), opMarkArrived) {
		return ErrOperationInFlight
	}
	defer h.tracker.Release(cmd.TruckID().String(), opMarkArrived)

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

	// Validate the transition locally before the remote call so an
	// out-of-order submit never reaches the store.
	if err = current.MarkArrived(time.Now()); err != nil {
		return err
	}

	procCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err = h.procedures.HandleTruckArrival(procCtx, cmd.TruckID(), cmd.ActorID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
