package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's order history from the
// database, newest first.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer history reads.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns the customer's orders descending by creation time. Totals
// come from the captured line prices, so history is stable under repricing.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.branch_id,
			o.status,
			o.payment_method,
			o.created_at,
			(SELECT COALESCE(SUM(l.quantity * l.unit_price_cents), 0)
			   FROM order_lines l WHERE l.order_id = o.id) AS total_cents
		FROM orders o
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetCustomerOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id, branchID  uuid.UUID
			status        int
			paymentMethod string
			createdAt     time.Time
			totalCents    int64
		)

		if err = rows.Scan(&id, &branchID, &status, &paymentMethod, &createdAt, &totalCents); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orderBranchID, idErr := kernel.UUIDFromBytes(branchID[:])
		if idErr != nil {
			return nil, idErr
		}

		total, moneyErr := kernel.NewMoney(totalCents)
		if moneyErr != nil {
			return nil, moneyErr
		}

		orders = append(orders, GetCustomerOrdersQueryResponse{
			ID:            orderID,
			BranchID:      orderBranchID,
			Status:        order.Status(status).String(),
			PaymentMethod: paymentMethod,
			Total:         total,
			CreatedAt:     createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
