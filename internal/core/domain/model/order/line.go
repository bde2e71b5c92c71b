package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not created through the
// NewLine constructor.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one position of an order: a menu item reference, the quantity, and
// the unit price captured at reservation time. The price and display name are
// copies, not live references, so later menu edits never alter a historical
// order.
type Line struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	name       string
	quantity   int
	unitPrice  kernel.Money

	guard guard.ConstructorGuard
}

// NewLine creates a validated order line.
// Quantity must be positive; unitPrice is the captured price and must be
// positive as menu items never carry a non-positive price.
func NewLine(menuItemID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setMenuItemID(menuItemID),
		line.setName(name),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// MenuItemID returns the referenced menu item's identifier.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Name returns the item display name captured at order time.
func (l Line) Name() string {
	return l.name
}

// Quantity returns the number of units ordered.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price captured at reservation time.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal returns quantity × captured unit price.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.MultiplyQuantity(l.quantity)
}

func (l *Line) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.menuItemID = id
	return nil
}

func (l *Line) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("line item name")
	}
	l.name = name
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is not greater than 0", price))
	}
	l.unitPrice = price
	return nil
}
