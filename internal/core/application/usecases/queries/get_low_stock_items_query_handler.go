package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockItemsQueryHandler reads low stock menu items from the database.
type GetLowStockItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockItemsQueryHandler creates a handler for low stock reads.
func NewGetLowStockItemsQueryHandler(db *gorm.DB) GetLowStockItemsQueryHandler {
	return GetLowStockItemsQueryHandler{db: db}
}

// Handle returns items at or below the threshold within the query's branch
// scope, emptiest first.
func (h GetLowStockItemsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockItemsQuery,
) ([]GetLowStockItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			branch_id,
			name,
			quantity
		FROM menu_items
		WHERE quantity <= ?
	`
	args := []any{query.Threshold()}
	if !query.Scope().IsAll() {
		sql += ` AND branch_id = ?`
		args = append(args, query.Scope().BranchID().Bytes())
	}
	sql += ` ORDER BY quantity ASC, name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetLowStockItemsQueryResponse, 0)
	for rows.Next() {
		var (
			id, branchID uuid.UUID
			name         string
			quantity     int
		)

		if err = rows.Scan(&id, &branchID, &name, &quantity); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		itemBranchID, idErr := kernel.UUIDFromBytes(branchID[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, GetLowStockItemsQueryResponse{
			ID:       itemID,
			BranchID: itemBranchID,
			Name:     name,
			Quantity: quantity,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
