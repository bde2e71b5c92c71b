package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrChangeMenuItemPriceCommandIsNotConstructed = errors.New(
	"ChangeMenuItemPriceCommand must be created via NewChangeMenuItemPriceCommand constructor",
)

// ChangeMenuItemPriceCommand represents a branch manager changing a menu
// item's price. Orders already placed keep their captured prices.
type ChangeMenuItemPriceCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	newPrice  kernel.Money
	principal access.Principal

	guard guard.ConstructorGuard
}

// NewChangeMenuItemPriceCommand creates a command to change an item's price.
func NewChangeMenuItemPriceCommand(itemID kernel.UUID, newPrice kernel.Money,
	principal access.Principal,
) (ChangeMenuItemPriceCommand, error) {
	cmd := ChangeMenuItemPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setNewPrice(newPrice),
		cmd.setPrincipal(principal),
	); err != nil {
		return ChangeMenuItemPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeMenuItemPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeMenuItemPriceCommandIsNotConstructed)
}

// ItemID returns the item being repriced.
func (c ChangeMenuItemPriceCommand) ItemID() kernel.UUID {
	return c.itemID
}

// NewPrice returns the new selling price.
func (c ChangeMenuItemPriceCommand) NewPrice() kernel.Money {
	return c.newPrice
}

// Principal returns the staff member changing the price.
func (c ChangeMenuItemPriceCommand) Principal() access.Principal {
	return c.principal
}

func (c *ChangeMenuItemPriceCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *ChangeMenuItemPriceCommand) setNewPrice(newPrice kernel.Money) error {
	if err := newPrice.Validate(); err != nil {
		return err
	}

	c.newPrice = newPrice
	return nil
}

func (c *ChangeMenuItemPriceCommand) setPrincipal(principal access.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
