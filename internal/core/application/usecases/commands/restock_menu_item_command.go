package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrRestockMenuItemCommandIsNotConstructed = errors.New(
	"RestockMenuItemCommand must be created via NewRestockMenuItemCommand constructor",
)

// RestockMenuItemCommand represents a branch manager adding stock to a menu item.
type RestockMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	amount    int
	principal access.Principal

	guard guard.ConstructorGuard
}

// NewRestockMenuItemCommand creates a command to restock a menu item.
func NewRestockMenuItemCommand(itemID kernel.UUID, amount int, principal access.Principal) (RestockMenuItemCommand, error) {
	cmd := RestockMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setAmount(amount),
		cmd.setPrincipal(principal),
	); err != nil {
		return RestockMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RestockMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRestockMenuItemCommandIsNotConstructed)
}

// ItemID returns the item being restocked.
func (c RestockMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Amount returns the number of units to add.
func (c RestockMenuItemCommand) Amount() int {
	return c.amount
}

// Principal returns the staff member restocking.
func (c RestockMenuItemCommand) Principal() access.Principal {
	return c.principal
}

func (c *RestockMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *RestockMenuItemCommand) setAmount(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	c.amount = amount
	return nil
}

func (c *RestockMenuItemCommand) setPrincipal(principal access.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
