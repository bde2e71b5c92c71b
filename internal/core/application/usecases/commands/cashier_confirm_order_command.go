package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCashierConfirmOrderCommandIsNotConstructed = errors.New(
	"CashierConfirmOrderCommand must be created via NewCashierConfirmOrderCommand constructor",
)

// CashierConfirmOrderCommand represents a cashier accepting a pending
// customer order at their branch, releasing it to the kitchen.
type CashierConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	principal access.Principal

	guard guard.ConstructorGuard
}

// NewCashierConfirmOrderCommand creates a command for a cashier confirmation.
func NewCashierConfirmOrderCommand(orderID kernel.UUID, principal access.Principal) (CashierConfirmOrderCommand, error) {
	cmd := CashierConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPrincipal(principal),
	); err != nil {
		return CashierConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CashierConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrCashierConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c CashierConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Principal returns the confirming cashier.
func (c CashierConfirmOrderCommand) Principal() access.Principal {
	return c.principal
}

func (c *CashierConfirmOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CashierConfirmOrderCommand) setPrincipal(principal access.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
