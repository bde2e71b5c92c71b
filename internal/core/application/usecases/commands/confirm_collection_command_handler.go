package commands

import (
	"context"

	"restaurant/internal/core/domain/model/access"
)

// ConfirmCollectionCommandHandler handles customers collecting ready orders.
// Only the customer who placed the order may collect it; a second collection
// attempt fails with order.ErrAlreadyProcessed.
type ConfirmCollectionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmCollectionCommandHandler creates a handler for order collections.
func NewConfirmCollectionCommandHandler(uowFactory OrderUoWFactory) ConfirmCollectionCommandHandler {
	return ConfirmCollectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle completes a Ready order on collection.
func (h *ConfirmCollectionCommandHandler) Handle(ctx context.Context, cmd ConfirmCollectionCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !o.IsOwnedBy(cmd.Principal().UserID()) {
		return access.ErrForbidden
	}

	from := o.Status()
	if err = o.ConfirmCollection(); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, o, from); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
