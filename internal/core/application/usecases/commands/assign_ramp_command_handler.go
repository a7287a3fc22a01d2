package commands

import (
	"context"
	"errors"

	"dockyard/internal/core/application/policy"
	"dockyard/internal/core/domain/services"
)

// ErrRampIsOccupied is returned when the candidate ramp already has a
// non-completed truck whose slot overlaps the candidate truck's window.
var ErrRampIsOccupied = errors.New("ramp is occupied for the requested window")

// AssignRampCommandHandler orchestrates ramp assignment. The handler takes
// a per-ramp store lock before reading occupancy, and the availability check
// and the ramp write share one transaction. Two clients racing the same ramp
// queue on the lock; the loser reads an occupancy that already includes the
// winner's committed row and is rejected with ErrRampIsOccupied.
//
// Example:
//
//	handler := NewAssignRampCommandHandler(uowFactory, pol)
//	cmd, _ := NewAssignRampCommand(truckID, 3, nil, policy.RoleAdmin)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrRampIsOccupied) {
//	    // Another truck holds ramp 3 for an overlapping slot
//	}
type AssignRampCommandHandler struct {
	uowFactory TruckUoWFactory
	allocator  services.RampAllocator
	policy     policy.Policy
}

// NewAssignRampCommandHandler creates a handler for ramp assignment.
func NewAssignRampCommandHandler(uowFactory TruckUoWFactory, pol policy.Policy) AssignRampCommandHandler {
	return AssignRampCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewRampAllocator(),
		policy:     pol,
	}
}

// Handle processes the assignment. Loads the candidate truck, locks the
// ramp, loads every active truck on it, runs the allocator against the
// candidate's own slot, and writes the ramp (plus the optional staff
// reference) on success.
func (h AssignRampCommandHandler) Handle(ctx context.Context, cmd AssignRampCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Check(cmd.Role(), policy.CapAssignRamp); err != nil {
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

	candidate, err := truckRepo.Get(ctx, cmd.TruckID())
	if err != nil {
		return err
	}

	if err = truckRepo.LockRampForAssignment(ctx, cmd.Ramp()); err != nil {
		return err
	}

	occupants, err := truckRepo.GetActiveOnRamp(ctx, cmd.Ramp())
	if err != nil {
		return err
	}

	available, err := h.allocator.IsRampAvailableFor(cmd.Ramp(), candidate, occupants)
	if err != nil {
		return err
	}
	if !available {
		return ErrRampIsOccupied
	}

	if err = candidate.AssignRamp(cmd.Ramp(), cmd.StaffID()); err != nil {
		return err
	}

	if err = truckRepo.Update(ctx, candidate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
