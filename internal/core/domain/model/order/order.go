package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through one of the constructors. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewCustomerOrder, NewWalkInOrder or RestoreOrder")
)

// Order represents a restaurant order in the system. It is the aggregate root
// that manages the order lifecycle from placement through kitchen preparation
// to collection.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and branch
//   - Must contain at least one line; each line captures the unit price in
//     effect when stock was reserved, so historical totals never drift
//   - The total is always the sum of line subtotals, never stored separately
//   - Status transitions are strictly forward (see Status)
//   - Can only be created through its constructors
//
// An order is either a customer self-service order (customerID set, starts at
// Pending, walks the full pipeline) or a walk-in till order (cashierID set,
// finalized as Completed on creation).
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the ordering customer's ID (nil for walk-in orders)
	customerID *kernel.UUID

	// cashierID is the cashier that created or confirmed the order (nil until then)
	cashierID *kernel.UUID

	// branchID is the branch whose stock the order consumed
	branchID kernel.UUID

	// customerName is the display name used on tickets and receipts
	customerName string

	// paymentMethod is the customer's declared payment method (nil for walk-in)
	paymentMethod *PaymentMethod

	// status represents the current state in the order lifecycle
	status Status

	// lines are the ordered items with their captured unit prices
	lines []Line

	// createdAt is the placement time in UTC
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewCustomerOrder creates a self-service order placed by a customer. The
// order starts in Pending status and must be confirmed by a cashier before
// the kitchen picks it up.
//
// All lines must already carry reserved stock: the caller reserves inventory
// first and builds lines from the reservation result, so the captured unit
// prices here are the prices actually charged.
func NewCustomerOrder(id kernel.UUID, customerID kernel.UUID, branchID kernel.UUID,
	customerName string, paymentMethod PaymentMethod, lines []Line,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setBranchID(branchID),
		order.setCustomerName(customerName),
		order.setPaymentMethod(paymentMethod),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// NewWalkInOrder creates an order rung up at the till by a cashier. The goods
// change hands immediately, so the order is created directly in Completed
// status; it exists for inventory accounting and sales reporting, not for the
// kitchen queue.
func NewWalkInOrder(id kernel.UUID, cashierID kernel.UUID, branchID kernel.UUID,
	customerName string, lines []Line,
) (*Order, error) {
	order := &Order{
		status:        Completed,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCashierID(cashierID),
		order.setBranchID(branchID),
		order.setCustomerName(customerName),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rehydrates an order from persistence. It revalidates the same
// invariants the creation constructors enforce, so a corrupted row cannot
// produce a usable aggregate.
func RestoreOrder(id kernel.UUID, customerID *kernel.UUID, cashierID *kernel.UUID,
	branchID kernel.UUID, customerName string, paymentMethod *PaymentMethod,
	status Status, lines []Line, createdAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBranchID(branchID),
		order.setCustomerName(customerName),
		order.setStatus(status),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	if customerID != nil {
		if err := order.setCustomerID(*customerID); err != nil {
			return nil, err
		}
	}
	if cashierID != nil {
		if err := order.setCashierID(*cashierID); err != nil {
			return nil, err
		}
	}
	if paymentMethod != nil {
		if err := order.setPaymentMethod(*paymentMethod); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the ordering customer's ID, or nil for walk-in orders.
func (o *Order) Customer() *kernel.UUID {
	return o.customerID
}

// Cashier returns the cashier's ID, or nil if no cashier has touched the order.
func (o *Order) Cashier() *kernel.UUID {
	return o.cashierID
}

// BranchID returns the branch the order belongs to.
func (o *Order) BranchID() kernel.UUID {
	return o.branchID
}

// CustomerName returns the display name on the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// PaymentMethod returns the declared payment method, or nil for walk-in orders.
func (o *Order) PaymentMethod() *PaymentMethod {
	return o.paymentMethod
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Lines returns the order lines. The returned slice is a copy.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total returns the sum of line subtotals. The total is derived from captured
// unit prices, so it is stable regardless of later menu price changes.
func (o *Order) Total() kernel.Money {
	total, _ := kernel.NewMoney(0)
	for _, line := range o.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// IsOwnedBy reports whether the order belongs to the given customer.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID != nil && o.customerID.IsEqual(customerID)
}

// BelongsToBranch reports whether the order was placed at the given branch.
func (o *Order) BelongsToBranch(branchID kernel.UUID) bool {
	return o.branchID.IsEqual(branchID)
}

// Confirm moves a Pending order to Confirmed and records the confirming
// cashier. Any order at or past Confirmed fails with ErrAlreadyProcessed.
func (o *Order) Confirm(cashierID kernel.UUID) error {
	if err := cashierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(Confirmed)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cashierID = &cashierID
	return nil
}

// ReaffirmPayment handles a customer re-submitting payment confirmation.
// While the order is still Pending this is a no-op; once a cashier has
// confirmed the order the re-submission fails with ErrAlreadyProcessed.
func (o *Order) ReaffirmPayment() error {
	if o.status.AtOrPast(Confirmed) {
		return fmt.Errorf("%w: payment was already confirmed", ErrAlreadyProcessed)
	}

	return nil
}

// AdvanceKitchen moves the order forward in the kitchen pipeline. The target
// must be one of KitchenTargets and lie strictly ahead of the current status;
// same-or-backward moves fail with ErrAlreadyProcessed. Forward jumps are
// allowed so a chef can take an order straight from Confirmed to Ready.
func (o *Order) AdvanceKitchen(target Status) error {
	allowed := false
	for _, s := range KitchenTargets() {
		if s == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a kitchen status", target))
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ConfirmCollection marks a Ready order as Completed when the customer picks
// it up. Collecting twice fails with ErrAlreadyProcessed; collecting an order
// the kitchen has not finished yet fails validation.
func (o *Order) ConfirmCollection() error {
	if o.status.AtOrPast(Completed) {
		return fmt.Errorf("%w: order was already collected", ErrAlreadyProcessed)
	}

	if o.status != Ready {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("order is %s, not %s", o.status, Ready))
	}

	o.status = Completed
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the ordering customer.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = &customerID
	return nil
}

// setCashierID validates and sets the cashier.
func (o *Order) setCashierID(cashierID kernel.UUID) error {
	if err := cashierID.Validate(); err != nil {
		return err
	}
	o.cashierID = &cashierID
	return nil
}

// setBranchID validates and sets the branch.
func (o *Order) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	o.branchID = branchID
	return nil
}

// setCustomerName validates and sets the display name.
func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = name
	return nil
}

// setPaymentMethod validates and sets the payment method.
func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = &method
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setLines validates and sets the order lines.
func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}
