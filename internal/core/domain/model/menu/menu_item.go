package menu

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
	// created through NewMenuItem or RestoreMenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem")
)

// MenuItem represents a sellable item in one branch's menu. Each branch keeps
// its own rows, so the same dish at two branches has two independent stocks
// and prices.
//
// MenuItem follows these invariants:
//   - Price is always positive
//   - Quantity (stock on hand) is never negative
//   - Can only be created through its constructors
//
// Decrementing stock for an order is not done through this aggregate: the
// repository issues a single conditional update so concurrent orders can
// never drive stock below zero.
type MenuItem struct {
	// id is the unique identifier for the menu item
	id kernel.UUID

	// branchID is the branch that sells the item
	branchID kernel.UUID

	// name is the display name of the item
	name string

	// price is the current selling price
	price kernel.Money

	// quantity is the stock on hand
	quantity int

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewMenuItem creates a menu item with an initial stock level.
func NewMenuItem(id kernel.UUID, branchID kernel.UUID, name string,
	price kernel.Money, quantity int,
) (*MenuItem, error) {
	item := &MenuItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setBranchID(branchID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem rehydrates a menu item from persistence.
func RestoreMenuItem(id kernel.UUID, branchID kernel.UUID, name string,
	price kernel.Money, quantity int,
) (*MenuItem, error) {
	return NewMenuItem(id, branchID, name, price, quantity)
}

// Validate ensures the MenuItem instance was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}

	return nil
}

// IsEqual compares two menu items by their unique identifiers.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// BranchID returns the owning branch.
func (m *MenuItem) BranchID() kernel.UUID {
	return m.branchID
}

// Name returns the display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the current selling price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// Quantity returns the stock on hand.
func (m *MenuItem) Quantity() int {
	return m.quantity
}

// Restock increases the stock on hand. The amount must be positive.
func (m *MenuItem) Restock(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restock amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	m.quantity += amount
	return nil
}

// ChangePrice sets a new selling price. Orders already placed keep the unit
// prices captured when their stock was reserved.
func (m *MenuItem) ChangePrice(newPrice kernel.Money) error {
	return m.setPrice(newPrice)
}

// setID validates and sets the item's unique identifier.
func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

// setBranchID validates and sets the owning branch.
func (m *MenuItem) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	m.branchID = branchID
	return nil
}

// setName validates and sets the display name.
func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	m.name = name
	return nil
}

// setPrice validates and sets the price. Price must be positive.
func (m *MenuItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price))
	}
	m.price = price
	return nil
}

// setQuantity validates and sets the stock on hand. Stock is never negative.
func (m *MenuItem) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 0", quantity))
	}
	m.quantity = quantity
	return nil
}
