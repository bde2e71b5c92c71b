package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrAdvanceKitchenStatusCommandIsNotConstructed = errors.New(
	"AdvanceKitchenStatusCommand must be created via NewAdvanceKitchenStatusCommand constructor",
)

// AdvanceKitchenStatusCommand represents kitchen staff moving an order
// forward in the preparation pipeline.
type AdvanceKitchenStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	target    order.Status
	principal access.Principal

	guard guard.ConstructorGuard
}

// NewAdvanceKitchenStatusCommand creates a command to advance an order's
// kitchen status. The target must be a valid lifecycle status; whether it is
// reachable from the order's current status is decided when handling.
func NewAdvanceKitchenStatusCommand(orderID kernel.UUID, target order.Status,
	principal access.Principal,
) (AdvanceKitchenStatusCommand, error) {
	cmd := AdvanceKitchenStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setPrincipal(principal),
	); err != nil {
		return AdvanceKitchenStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceKitchenStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceKitchenStatusCommandIsNotConstructed)
}

// OrderID returns the order being advanced.
func (c AdvanceKitchenStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c AdvanceKitchenStatusCommand) Target() order.Status {
	return c.target
}

// Principal returns the staff member advancing the order.
func (c AdvanceKitchenStatusCommand) Principal() access.Principal {
	return c.principal
}

func (c *AdvanceKitchenStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceKitchenStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *AdvanceKitchenStatusCommand) setPrincipal(principal access.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
