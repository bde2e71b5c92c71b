package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/guard"
)

var ErrPlaceWalkInOrderCommandIsNotConstructed = errors.New(
	"PlaceWalkInOrderCommand must be created via NewPlaceWalkInOrderCommand constructor",
)

// defaultWalkInName is the receipt name used when the cashier does not enter
// one. Walk-in customers are usually anonymous.
const defaultWalkInName = "Walk-in Customer"

// PlaceWalkInOrderCommand represents a cashier ringing up a walk-in customer
// at the till. Stock is reserved and the order recorded as completed in one
// step, against the cashier's own branch.
type PlaceWalkInOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	principal    access.Principal
	customerName string
	items        []menu.ReservationRequest

	guard guard.ConstructorGuard
}

// NewPlaceWalkInOrderCommand creates a command to record a walk-in sale.
// The principal is the cashier at the till; their home branch determines
// which stock the sale consumes.
func NewPlaceWalkInOrderCommand(orderID kernel.UUID, principal access.Principal,
	customerName string, items []menu.ReservationRequest,
) (PlaceWalkInOrderCommand, error) {
	cmd := PlaceWalkInOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPrincipal(principal),
		cmd.setCustomerName(customerName),
		cmd.setItems(items),
	); err != nil {
		return PlaceWalkInOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceWalkInOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceWalkInOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceWalkInOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Principal returns the cashier placing the order.
func (c PlaceWalkInOrderCommand) Principal() access.Principal {
	return c.principal
}

// CustomerName returns the name the cashier entered for the customer, or the
// walk-in default when none was given.
func (c PlaceWalkInOrderCommand) CustomerName() string {
	return c.customerName
}

// Items returns the requested items and quantities.
func (c PlaceWalkInOrderCommand) Items() []menu.ReservationRequest {
	return c.items
}

func (c *PlaceWalkInOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceWalkInOrderCommand) setPrincipal(principal access.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *PlaceWalkInOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		customerName = defaultWalkInName
	}

	c.customerName = customerName
	return nil
}

func (c *PlaceWalkInOrderCommand) setItems(items []menu.ReservationRequest) error {
	if err := validateItems(items); err != nil {
		return err
	}

	c.items = items
	return nil
}
