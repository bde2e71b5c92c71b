package commands

import (
	"fmt"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// validateItems checks the item requests of an order placement command:
// at least one item, valid IDs, positive quantities, no item listed twice.
// Duplicates are rejected up front: each order line maps to one menu item,
// so a double entry would collide on insert after reserving stock twice.
func validateItems(items []menu.ReservationRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
		if _, ok := seen[item.MenuItemID.String()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("menu item %s is listed more than once", item.MenuItemID))
		}
		seen[item.MenuItemID.String()] = struct{}{}
	}

	return nil
}

// linesFromReserved turns a successful reservation into order lines, carrying
// over the names and unit prices the reservation captured.
func linesFromReserved(reserved []menu.ReservedItem) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(reserved))
	for _, r := range reserved {
		line, err := order.NewLine(r.MenuItemID, r.Name, r.Quantity, r.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
