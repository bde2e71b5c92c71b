package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrPlaceCustomerOrderCommandIsNotConstructed = errors.New(
	"PlaceCustomerOrderCommand must be created via NewPlaceCustomerOrderCommand constructor",
)

// PlaceCustomerOrderCommand represents a customer placing a self-service
// order against a branch of their choosing. The order starts in Pending
// status and waits for a cashier's confirmation.
type PlaceCustomerOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	principal     access.Principal
	branchID      kernel.UUID
	customerName  string
	paymentMethod order.PaymentMethod
	items         []menu.ReservationRequest

	guard guard.ConstructorGuard
}

// NewPlaceCustomerOrderCommand creates a command to place a customer order.
// The payment method is validated against the accepted set; it is recorded
// as-is, no charge is made.
func NewPlaceCustomerOrderCommand(orderID kernel.UUID, principal access.Principal,
	branchID kernel.UUID, customerName string, paymentMethod order.PaymentMethod,
	items []menu.ReservationRequest,
) (PlaceCustomerOrderCommand, error) {
	cmd := PlaceCustomerOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPrincipal(principal),
		cmd.setBranchID(branchID),
		cmd.setCustomerName(customerName),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setItems(items),
	); err != nil {
		return PlaceCustomerOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceCustomerOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceCustomerOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceCustomerOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Principal returns the ordering customer.
func (c PlaceCustomerOrderCommand) Principal() access.Principal {
	return c.principal
}

// BranchID returns the branch the customer is ordering from.
func (c PlaceCustomerOrderCommand) BranchID() kernel.UUID {
	return c.branchID
}

// CustomerName returns the name to print on the ticket.
func (c PlaceCustomerOrderCommand) CustomerName() string {
	return c.customerName
}

// PaymentMethod returns the declared payment method.
func (c PlaceCustomerOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Items returns the requested items and quantities.
func (c PlaceCustomerOrderCommand) Items() []menu.ReservationRequest {
	return c.items
}

func (c *PlaceCustomerOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceCustomerOrderCommand) setPrincipal(principal access.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *PlaceCustomerOrderCommand) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}

	c.branchID = branchID
	return nil
}

func (c *PlaceCustomerOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *PlaceCustomerOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *PlaceCustomerOrderCommand) setItems(items []menu.ReservationRequest) error {
	if err := validateItems(items); err != nil {
		return err
	}

	c.items = items
	return nil
}
