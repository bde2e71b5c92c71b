package commands

import (
	"context"

	"restaurant/internal/core/domain/model/access"
)

// CashierConfirmOrderCommandHandler handles cashier confirmations of pending
// customer orders.
//
// The status write is conditional on the order still being Pending, so two
// cashiers grabbing the same ticket cannot both confirm it: the slower one
// gets order.ErrAlreadyProcessed back from the repository.
type CashierConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCashierConfirmOrderCommandHandler creates a handler for cashier confirmations.
func NewCashierConfirmOrderCommandHandler(uowFactory OrderUoWFactory) CashierConfirmOrderCommandHandler {
	return CashierConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle confirms the order on behalf of the cashier. The cashier must work
// at the order's branch; confirming another branch's order is forbidden.
func (h *CashierConfirmOrderCommandHandler) Handle(ctx context.Context, cmd CashierConfirmOrderCommand) error {
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
	if err = o.Confirm(cmd.Principal().UserID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, o, from); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
