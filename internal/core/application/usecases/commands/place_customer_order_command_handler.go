package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// PlaceCustomerOrderCommandHandler handles customer self-service orders.
//
// Stock is reserved the moment the order is placed, not when a cashier
// confirms it: a Pending order already owns its units, so two customers can
// never both hold the last portion. Reservation and order insert share one
// transaction and roll back together.
type PlaceCustomerOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewPlaceCustomerOrderCommandHandler creates a handler for customer orders.
func NewPlaceCustomerOrderCommandHandler(uowFactory FulfillmentUoWFactory) PlaceCustomerOrderCommandHandler {
	return PlaceCustomerOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the target branch exists, reserves stock there, and stores
// the order in Pending status with the unit prices captured by the
// reservation. The branch check comes first so ordering from a nonexistent
// branch reads as a branch problem, not a missing menu item.
func (h *PlaceCustomerOrderCommandHandler) Handle(ctx context.Context, cmd PlaceCustomerOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.BranchRepository().Get(ctx, cmd.BranchID()); err != nil {
		return err
	}

	reserved, err := uow.MenuItemRepository().Reserve(ctx, cmd.BranchID(), cmd.Items())
	if err != nil {
		return err
	}

	lines, err := linesFromReserved(reserved)
	if err != nil {
		return err
	}

	o, err := order.NewCustomerOrder(cmd.OrderID(), cmd.Principal().UserID(), cmd.BranchID(),
		cmd.CustomerName(), cmd.PaymentMethod(), lines)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
