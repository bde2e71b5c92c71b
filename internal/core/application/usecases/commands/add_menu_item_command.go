package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand represents a branch manager adding a new item to their
// branch's menu with an initial stock level.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	branchID  kernel.UUID
	name      string
	price     kernel.Money
	quantity  int
	principal access.Principal

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
func NewAddMenuItemCommand(itemID, branchID kernel.UUID, name string,
	price kernel.Money, quantity int, principal access.Principal,
) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setBranchID(branchID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setQuantity(quantity),
		cmd.setPrincipal(principal),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// ItemID returns the new item's identifier.
func (c AddMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// BranchID returns the branch receiving the item.
func (c AddMenuItemCommand) BranchID() kernel.UUID {
	return c.branchID
}

// Name returns the item display name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Price returns the selling price.
func (c AddMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Quantity returns the initial stock level.
func (c AddMenuItemCommand) Quantity() int {
	return c.quantity
}

// Principal returns the staff member adding the item.
func (c AddMenuItemCommand) Principal() access.Principal {
	return c.principal
}

func (c *AddMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddMenuItemCommand) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}

	c.branchID = branchID
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *AddMenuItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *AddMenuItemCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *AddMenuItemCommand) setPrincipal(principal access.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
