package commands

import (
	"context"

	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/order"
)

// PlaceWalkInOrderCommandHandler handles walk-in sales at the till.
//
// The reservation and the order insert share one transaction: either every
// requested item is decremented and the completed order stored, or nothing
// happens at all. A reservation failure on the second item of two rolls back
// the decrement already applied to the first.
type PlaceWalkInOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewPlaceWalkInOrderCommandHandler creates a handler for walk-in sales.
func NewPlaceWalkInOrderCommandHandler(uowFactory FulfillmentUoWFactory) PlaceWalkInOrderCommandHandler {
	return PlaceWalkInOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reserves stock at the cashier's branch and records the sale as a
// completed order. The goods leave the counter immediately, so there is no
// kitchen pipeline for walk-in orders.
func (h *PlaceWalkInOrderCommandHandler) Handle(ctx context.Context, cmd PlaceWalkInOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	scope, err := access.ScopeFor(cmd.Principal())
	if err != nil {
		return err
	}
	if scope.IsAll() {
		// a till sale needs a concrete branch behind the counter
		return access.ErrForbidden
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reserved, err := uow.MenuItemRepository().Reserve(ctx, scope.BranchID(), cmd.Items())
	if err != nil {
		return err
	}

	lines, err := linesFromReserved(reserved)
	if err != nil {
		return err
	}

	o, err := order.NewWalkInOrder(cmd.OrderID(), cmd.Principal().UserID(), scope.BranchID(),
		cmd.CustomerName(), lines)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
