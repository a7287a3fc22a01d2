package commands

import (
	"context"

	"dockyard/internal/core/application/policy"
)

// DeleteTruckCommandHandler removes a booking. Deletion is reserved for the
// superadmin role; the truck is loaded first so a missing booking surfaces
// as a not-found error rather than a silent no-op.
type DeleteTruckCommandHandler struct {
	uowFactory TruckUoWFactory
	policy     policy.Policy
}

// NewDeleteTruckCommandHandler creates a handler for truck deletion.
func NewDeleteTruckCommandHandler(uowFactory TruckUoWFactory, pol policy.Policy) DeleteTruckCommandHandler {
	return DeleteTruckCommandHandler{
		uowFactory: uowFactory,
		policy:     pol,
	}
}

// Handle processes the deletion.
func (h DeleteTruckCommandHandler) Handle(ctx context.Context, cmd DeleteTruckCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Check(cmd.Role(), policy.CapDeleteTruck); err != nil {
		return err
	}

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

	if err = truckRepo.Delete(ctx, current.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
