package commands

import (
	"context"
	"log/slog"
	"time"

	"dockyard/internal/core/application/policy"
	"dockyard/internal/core/domain/model/truck"
	"dockyard/internal/core/ports"
	"dockyard/internal/pkg/inflight"
)

// MarkDoneCommandHandler processes the InProgress -> Done transition.
//
// The completion path has a documented causal order rather than one atomic
// transaction, because the status-change procedure and the metrics recompute
// run on the store's own connection:
//
//  1. the handler credit rows are staged in the transaction,
//  2. the handle_truck_status_change procedure records Done server-side,
//  3. the rows commit, then the daily KPI recompute fires asynchronously.
//
// A failed credit write therefore aborts before the server-side transition;
// only a commit failure can leave a completed truck without credit rows. And
// the recompute never runs before the rows are durable, which would under-
// or double-count the truck's contribution in the aggregates.
type MarkDoneCommandHandler struct {
	uowFactory CompletionUoWFactory
	procedures ports.StoreProcedures
	tracker    *inflight.Tracker
	policy     policy.Policy
	logger     *slog.Logger
	timeout    time.Duration

	// refreshDone, when non-nil, is closed by the background KPI refresh.
	// Tests use it to wait for the fire-and-forget call.
	refreshDone chan struct{}
}

// NewMarkDoneCommandHandler creates a handler for the completion transition.
func NewMarkDoneCommandHandler(
	uowFactory CompletionUoWFactory,
	procedures ports.StoreProcedures,
	tracker *inflight.Tracker,
	pol policy.Policy,
	logger *slog.Logger,
) MarkDoneCommandHandler {
	return MarkDoneCommandHandler{
		uowFactory: uowFactory,
		procedures: procedures,
		tracker:    tracker,
		policy:     pol,
		logger:     logger.With("component", "mark_done_handler"),
		timeout:    DefaultProcedureTimeout,
	}
}

// WithRefreshNotifier returns a copy of the handler whose background KPI
// refresh closes ch when it finishes. Used by tests to wait for the
// fire-and-forget call.
func (h MarkDoneCommandHandler) WithRefreshNotifier(ch chan struct{}) MarkDoneCommandHandler {
	h.refreshDone = ch
	return h
}

// Handle processes the completion. A truck that is already Done is rejected
// by the status transition check, so a repeated submit never duplicates the
// handler credit rows.
func (h MarkDoneCommandHandler) Handle(ctx context.Context, cmd MarkDoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Check(cmd.Role(), policy.CapAdvanceStatus); err != nil {
		return err
	}

	if !h.tracker.TryAcquire(cmd.TruckID().String(), opMarkDone) {
		return ErrOperationInFlight
	}
	defer h.tracker.Release(cmd.TruckID().String(), opMarkDone)

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

	completedAt := time.Now()
	if err = current.MarkDone(completedAt); err != nil {
		return err
	}

	handlerRepo := uow.HandlerRecordRepository()
	if err = handlerRepo.Add(ctx, ports.HandlerRecord{
		TruckID:     cmd.TruckID(),
		HandlerID:   cmd.ActorID(),
		HandlerName: cmd.ActorName(),
	}); err != nil {
		return err
	}
	if cmd.HelperID() != nil {
		if err = handlerRepo.Add(ctx, ports.HandlerRecord{
			TruckID:     cmd.TruckID(),
			HandlerID:   *cmd.HelperID(),
			HandlerName: cmd.HelperName(),
		}); err != nil {
			return err
		}
	}

	procCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err = h.procedures.HandleTruckStatusChange(procCtx, cmd.TruckID(), truck.Done, cmd.ActorID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Credit rows are durable; the recompute may now run. Fire-and-forget:
	// a failed refresh is logged and the completion still stands.
	done := h.refreshDone
	go func() {
		refreshCtx, refreshCancel := context.WithTimeout(context.Background(), DefaultProcedureTimeout)
		defer refreshCancel()
		if done != nil {
			defer close(done)
		}

		if refreshErr := h.procedures.RefreshUserKPIMetrics(refreshCtx, completedAt); refreshErr != nil {
			h.logger.ErrorContext(refreshCtx, "KPI metrics refresh failed",
				"truck_id", cmd.TruckID().String(), "error", refreshErr)
		}
	}()

	return nil
}
