package commands

import (
	"context"

	"restaurant/internal/core/domain/model/access"
)

// AdvanceKitchenStatusCommandHandler handles kitchen pipeline moves
// (Confirmed -> Preparing -> Ready -> Completed, forward jumps allowed).
//
// The domain rejects same-or-backward moves in memory, and the conditional
// status write catches the race where another request moved the order between
// the read and the update. Either path surfaces order.ErrAlreadyProcessed.
type AdvanceKitchenStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceKitchenStatusCommandHandler creates a handler for kitchen moves.
func NewAdvanceKitchenStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceKitchenStatusCommandHandler {
	return AdvanceKitchenStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle advances the order to the requested status. The staff member must
// work at the order's branch.
func (h *AdvanceKitchenStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceKitchenStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	scope, err := access.ScopeFor(cmd.Principal())
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !scope.Covers(o.BranchID()) {
		return access.ErrForbidden
	}

	from := o.Status()
	if err = o.AdvanceKitchen(cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, o, from); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
