package commands

import (
	"context"
	"time"

	"dockyard/internal/core/application/policy"
)

// UpdateExceptionStatusCommandHandler moves an exception through its
// lifecycle. Re-resolving an already resolved exception is rejected by the
// aggregate, so the stamped resolver and resolution time are never
// overwritten.
type UpdateExceptionStatusCommandHandler struct {
	uowFactory ExceptionUoWFactory
	policy     policy.Policy
}

// NewUpdateExceptionStatusCommandHandler creates a handler for exception
// status updates.
func NewUpdateExceptionStatusCommandHandler(
	uowFactory ExceptionUoWFactory,
	pol policy.Policy,
) UpdateExceptionStatusCommandHandler {
	return UpdateExceptionStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     pol,
	}
}

// Handle processes the status update.
func (h UpdateExceptionStatusCommandHandler) Handle(ctx context.Context, cmd UpdateExceptionStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Check(cmd.Role(), policy.CapResolveException); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exceptionRepo := uow.ExceptionRepository()

	record, err := exceptionRepo.Get(ctx, cmd.ExceptionID())
	if err != nil {
		return err
	}

	if err = record.TransitionTo(cmd.NewStatus(), cmd.ResolvedBy(), time.Now()); err != nil {
		return err
	}

	if err = exceptionRepo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
