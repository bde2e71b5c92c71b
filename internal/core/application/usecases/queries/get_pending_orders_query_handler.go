package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler reads the pending confirmation queue from the
// database. Oldest orders come first so cashiers work the queue in arrival
// order.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending queue reads.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle returns pending customer orders within the query's branch scope,
// ascending by creation time.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.branch_id,
			o.customer_name,
			o.payment_method,
			o.created_at,
			(SELECT COALESCE(SUM(l.quantity * l.unit_price_cents), 0)
			   FROM order_lines l WHERE l.order_id = o.id) AS total_cents
		FROM orders o
		WHERE o.status = ? AND o.customer_id IS NOT NULL
	`
	args := []any{order.Pending}
	if !query.Scope().IsAll() {
		sql += ` AND o.branch_id = ?`
		args = append(args, query.Scope().BranchID().Bytes())
	}
	sql += ` ORDER BY o.created_at ASC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetPendingOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id, branchID  uuid.UUID
			customerName  string
			paymentMethod string
			createdAt     time.Time
			totalCents    int64
		)

		if err = rows.Scan(&id, &branchID, &customerName, &paymentMethod, &createdAt, &totalCents); err != nil {
			return nil, err
		}

		resp, respErr := buildPendingResponse(id, branchID, customerName, paymentMethod, createdAt, totalCents)
		if respErr != nil {
			return nil, respErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func buildPendingResponse(id, branchID uuid.UUID, customerName, paymentMethod string,
	createdAt time.Time, totalCents int64,
) (GetPendingOrdersQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	orderBranchID, err := kernel.UUIDFromBytes(branchID[:])
	if err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	total, err := kernel.NewMoney(totalCents)
	if err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	return GetPendingOrdersQueryResponse{
		ID:            orderID,
		BranchID:      orderBranchID,
		CustomerName:  customerName,
		PaymentMethod: paymentMethod,
		Total:         total,
		CreatedAt:     createdAt,
	}, nil
}
