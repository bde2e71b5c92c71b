package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrConfirmCollectionCommandIsNotConstructed = errors.New(
	"ConfirmCollectionCommand must be created via NewConfirmCollectionCommand constructor",
)

// ConfirmCollectionCommand represents a customer collecting their ready order.
type ConfirmCollectionCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	principal access.Principal

	guard guard.ConstructorGuard
}

// NewConfirmCollectionCommand creates a command for an order collection.
func NewConfirmCollectionCommand(orderID kernel.UUID, principal access.Principal) (ConfirmCollectionCommand, error) {
	cmd := ConfirmCollectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPrincipal(principal),
	); err != nil {
		return ConfirmCollectionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmCollectionCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCollectionCommandIsNotConstructed)
}

// OrderID returns the order being collected.
func (c ConfirmCollectionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Principal returns the collecting customer.
func (c ConfirmCollectionCommand) Principal() access.Principal {
	return c.principal
}

func (c *ConfirmCollectionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmCollectionCommand) setPrincipal(principal access.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
