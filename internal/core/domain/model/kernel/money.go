package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney")

// Money represents a monetary amount in integer cents, avoiding the rounding
// drift of floating-point arithmetic. Amounts are non-negative; item prices
// additionally require a positive amount, which the menu aggregate enforces.
//
// Money is an immutable value object. The zero value is invalid; use NewMoney.
//
// Example:
//
//	price, err := kernel.NewMoney(1200) // 12.00
//	total := price.MultiplyQuantity(2)  // 24.00
type Money struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney creates a Money amount from integer cents.
// Negative amounts are rejected.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}

	return Money{cents: cents, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the Money was created through NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents, guard: guard.NewConstructorGuard()}
}

// MultiplyQuantity returns the amount scaled by an item quantity.
func (m Money) MultiplyQuantity(quantity int) Money {
	return Money{cents: m.cents * int64(quantity), guard: guard.NewConstructorGuard()}
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount as a decimal, e.g. "12.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
