package commands

import (
	"context"

	"restaurant/internal/core/domain/model/access"
)

// RestockMenuItemCommandHandler handles stock replenishment.
type RestockMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewRestockMenuItemCommandHandler creates a handler for restocking.
func NewRestockMenuItemCommandHandler(uowFactory MenuUoWFactory) RestockMenuItemCommandHandler {
	return RestockMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle increases the item's stock. The principal's scope must cover the
// item's branch.
func (h *RestockMenuItemCommandHandler) Handle(ctx context.Context, cmd RestockMenuItemCommand) error {
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

	menuRepo := uow.MenuItemRepository()
	item, err := menuRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if !scope.Covers(item.BranchID()) {
		return access.ErrForbidden
	}

	if err = item.Restock(cmd.Amount()); err != nil {
		return err
	}

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
