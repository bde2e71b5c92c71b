package commands

import (
	"context"

	"restaurant/internal/core/domain/model/access"
)

// ChangeMenuItemPriceCommandHandler handles menu price changes.
//
// Only the menu row changes: lines of existing orders carry their own copy of
// the unit price, so totals of past orders are untouched by a reprice.
type ChangeMenuItemPriceCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewChangeMenuItemPriceCommandHandler creates a handler for price changes.
func NewChangeMenuItemPriceCommandHandler(uowFactory MenuUoWFactory) ChangeMenuItemPriceCommandHandler {
	return ChangeMenuItemPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the new price. The principal's scope must cover the item's branch.
func (h *ChangeMenuItemPriceCommandHandler) Handle(ctx context.Context, cmd ChangeMenuItemPriceCommand) error {
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

	if err = item.ChangePrice(cmd.NewPrice()); err != nil {
		return err
	}

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
