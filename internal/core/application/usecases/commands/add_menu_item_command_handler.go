package commands

import (
	"context"

	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/menu"
)

// AddMenuItemCommandHandler handles adding items to a branch menu.
type AddMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for menu item creation.
func NewAddMenuItemCommandHandler(uowFactory MenuUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the item in the target branch's menu. The principal's scope
// must cover the target branch.
func (h *AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	scope, err := access.ScopeFor(cmd.Principal())
	if err != nil {
		return err
	}
	if !scope.Covers(cmd.BranchID()) {
		return access.ErrForbidden
	}

	item, err := menu.NewMenuItem(cmd.ItemID(), cmd.BranchID(), cmd.Name(), cmd.Price(), cmd.Quantity())
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

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
