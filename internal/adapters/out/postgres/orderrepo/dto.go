package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database row for an order.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID    *uuid.UUID `gorm:"type:uuid;index"`
	CashierID     *uuid.UUID `gorm:"type:uuid"`
	BranchID      uuid.UUID  `gorm:"type:uuid;index"`
	CustomerName  string
	PaymentMethod *string
	Status        int `gorm:"index"`
	CreatedAt     time.Time
}

// TableName overrides the default GORM table name.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one line of an order. Name and unit price are the
// values captured at ordering time, deliberately decoupled from the live
// menu_items row.
type OrderLineDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuItemID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	Quantity       int
	UnitPriceCents int64
}

// TableName overrides the default GORM table name.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) (OrderDTO, []OrderLineDTO) {
	dto := OrderDTO{
		ID:           aggregate.ID().Bytes(),
		BranchID:     aggregate.BranchID().Bytes(),
		CustomerName: aggregate.CustomerName(),
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
	}

	if customerID := aggregate.Customer(); customerID != nil {
		id := customerID.Bytes()
		dto.CustomerID = &id
	}

	if cashierID := aggregate.Cashier(); cashierID != nil {
		id := cashierID.Bytes()
		dto.CashierID = &id
	}

	if method := aggregate.PaymentMethod(); method != nil {
		s := method.String()
		dto.PaymentMethod = &s
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:        aggregate.ID().Bytes(),
			MenuItemID:     line.MenuItemID().Bytes(),
			Name:           line.Name(),
			Quantity:       line.Quantity(),
			UnitPriceCents: line.UnitPrice().Cents(),
		})
	}

	return dto, lines
}

func toDomain(dto OrderDTO, lineDTOs []OrderLineDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if cErr != nil {
			return nil, cErr
		}
		customerID = &cID
	}

	var cashierID *kernel.UUID
	if dto.CashierID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.CashierID)[:])
		if cErr != nil {
			return nil, cErr
		}
		cashierID = &cID
	}

	var paymentMethod *order.PaymentMethod
	if dto.PaymentMethod != nil {
		method, mErr := order.PaymentMethodFromString(*dto.PaymentMethod)
		if mErr != nil {
			return nil, mErr
		}
		paymentMethod = &method
	}

	status := order.Status(dto.Status)

	lines := make([]order.Line, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		menuItemID, lErr := kernel.UUIDFromBytes(lineDTO.MenuItemID[:])
		if lErr != nil {
			return nil, lErr
		}

		unitPrice, lErr := kernel.NewMoney(lineDTO.UnitPriceCents)
		if lErr != nil {
			return nil, lErr
		}

		line, lErr := order.NewLine(menuItemID, lineDTO.Name, lineDTO.Quantity, unitPrice)
		if lErr != nil {
			return nil, lErr
		}

		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		cashierID,
		branchID,
		dto.CustomerName,
		paymentMethod,
		status,
		lines,
		dto.CreatedAt,
	)
}
