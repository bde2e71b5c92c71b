package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetKitchenOrdersQueryHandler reads the kitchen queue from the database:
// orders in Confirmed, Preparing or Ready status together with their lines.
type GetKitchenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenOrdersQueryHandler creates a handler for kitchen queue reads.
func NewGetKitchenOrdersQueryHandler(db *gorm.DB) GetKitchenOrdersQueryHandler {
	return GetKitchenOrdersQueryHandler{db: db}
}

// Handle returns in-progress orders within the query's branch scope, oldest
// first, each with its ticket lines.
func (h GetKitchenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenOrdersQuery,
) ([]GetKitchenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.customer_name,
			o.status,
			o.created_at,
			l.name,
			l.quantity
		FROM orders o
		JOIN order_lines l ON l.order_id = o.id
		WHERE o.status IN (?, ?, ?)
	`
	args := []any{order.Confirmed, order.Preparing, order.Ready}
	if !query.Scope().IsAll() {
		sql += ` AND o.branch_id = ?`
		args = append(args, query.Scope().BranchID().Bytes())
	}
	sql += ` ORDER BY o.created_at ASC, o.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// rows arrive grouped by order; fold consecutive lines into one ticket
	orders := make([]GetKitchenOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id           uuid.UUID
			customerName string
			status       int
			createdAt    time.Time
			lineName     string
			lineQuantity int
		)

		if err = rows.Scan(&id, &customerName, &status, &createdAt, &lineName, &lineQuantity); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		line := KitchenLine{Name: lineName, Quantity: lineQuantity}
		if n := len(orders); n > 0 && orders[n-1].ID.IsEqual(orderID) {
			orders[n-1].Lines = append(orders[n-1].Lines, line)
			continue
		}

		orders = append(orders, GetKitchenOrdersQueryResponse{
			ID:           orderID,
			CustomerName: customerName,
			Status:       order.Status(status).String(),
			CreatedAt:    createdAt,
			Lines:        []KitchenLine{line},
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
