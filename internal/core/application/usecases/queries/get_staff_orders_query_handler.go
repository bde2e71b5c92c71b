package queries

import (
	"context"
	"database/sql"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStaffOrdersQueryHandler reads the scoped order list for staff from the
// database, newest first.
type GetStaffOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStaffOrdersQueryHandler creates a handler for staff order list reads.
func NewGetStaffOrdersQueryHandler(db *gorm.DB) GetStaffOrdersQueryHandler {
	return GetStaffOrdersQueryHandler{db: db}
}

// Handle returns all orders within the query's branch scope descending by
// creation time.
func (h GetStaffOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStaffOrdersQuery,
) ([]GetStaffOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			o.id,
			o.branch_id,
			o.customer_name,
			o.cashier_id,
			o.customer_id,
			o.status,
			o.payment_method,
			o.created_at,
			(SELECT COALESCE(SUM(l.quantity * l.unit_price_cents), 0)
			   FROM order_lines l WHERE l.order_id = o.id) AS total_cents
		FROM orders o
	`
	args := []any{}
	if !query.Scope().IsAll() {
		sqlQuery += ` WHERE o.branch_id = ?`
		args = append(args, query.Scope().BranchID().Bytes())
	}
	sqlQuery += ` ORDER BY o.created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetStaffOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id, branchID  uuid.UUID
			customerName  string
			cashierID     *uuid.UUID
			customerID    *uuid.UUID
			status        int
			paymentMethod sql.NullString
			createdAt     time.Time
			totalCents    int64
		)

		if err = rows.Scan(&id, &branchID, &customerName, &cashierID, &customerID,
			&status, &paymentMethod, &createdAt, &totalCents); err != nil {
			return nil, err
		}

		resp, respErr := buildStaffResponse(id, branchID, customerName, cashierID, customerID,
			status, paymentMethod, createdAt, totalCents)
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

func buildStaffResponse(id, branchID uuid.UUID, customerName string,
	cashierID, customerID *uuid.UUID, status int, paymentMethod sql.NullString,
	createdAt time.Time, totalCents int64,
) (GetStaffOrdersQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetStaffOrdersQueryResponse{}, err
	}

	orderBranchID, err := kernel.UUIDFromBytes(branchID[:])
	if err != nil {
		return GetStaffOrdersQueryResponse{}, err
	}

	var cashier *kernel.UUID
	if cashierID != nil {
		cID, cErr := kernel.UUIDFromBytes((*cashierID)[:])
		if cErr != nil {
			return GetStaffOrdersQueryResponse{}, cErr
		}
		cashier = &cID
	}

	var method *string
	if paymentMethod.Valid {
		method = &paymentMethod.String
	}

	total, err := kernel.NewMoney(totalCents)
	if err != nil {
		return GetStaffOrdersQueryResponse{}, err
	}

	return GetStaffOrdersQueryResponse{
		ID:            orderID,
		BranchID:      orderBranchID,
		CustomerName:  customerName,
		CashierID:     cashier,
		Status:        order.Status(status).String(),
		PaymentMethod: method,
		Total:         total,
		CreatedAt:     createdAt,
		WalkIn:        customerID == nil,
	}, nil
}
