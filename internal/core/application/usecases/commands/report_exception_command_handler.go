package commands

import (
	"context"

	"dockyard/internal/core/application/policy"
	"dockyard/internal/core/domain/model/exception"
)

// ReportExceptionCommandHandler records a new operational issue in Pending
// status within a single transaction.
type ReportExceptionCommandHandler struct {
	uowFactory ExceptionUoWFactory
	policy     policy.Policy
}

// NewReportExceptionCommandHandler creates a handler for exception reports.
func NewReportExceptionCommandHandler(uowFactory ExceptionUoWFactory, pol policy.Policy) ReportExceptionCommandHandler {
	return ReportExceptionCommandHandler{
		uowFactory: uowFactory,
		policy:     pol,
	}
}

// Handle processes the report.
func (h ReportExceptionCommandHandler) Handle(ctx context.Context, cmd ReportExceptionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Check(cmd.Role(), policy.CapReportException); err != nil {
		return err
	}

	record, err := exception.NewException(
		cmd.ExceptionID(),
		cmd.TruckID(),
		cmd.ExceptionType(),
		cmd.Reason(),
		cmd.Priority(),
		cmd.EstimatedResolution(),
		cmd.ActorID(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ExceptionRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
