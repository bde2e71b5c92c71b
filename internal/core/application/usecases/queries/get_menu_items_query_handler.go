package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuItemsQueryHandler reads a branch menu from the database.
type GetMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemsQueryHandler creates a handler for menu reads.
func NewGetMenuItemsQueryHandler(db *gorm.DB) GetMenuItemsQueryHandler {
	return GetMenuItemsQueryHandler{db: db}
}

// Handle returns the branch's menu items ordered by name.
func (h GetMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemsQuery,
) ([]GetMenuItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price_cents,
			quantity
		FROM menu_items
		WHERE branch_id = ?
		ORDER BY name
	`, query.BranchID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetMenuItemsQueryResponse, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			name       string
			priceCents int64
			quantity   int
		)

		if err = rows.Scan(&id, &name, &priceCents, &quantity); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		price, moneyErr := kernel.NewMoney(priceCents)
		if moneyErr != nil {
			return nil, moneyErr
		}

		items = append(items, GetMenuItemsQueryResponse{
			ID:       itemID,
			Name:     name,
			Price:    price,
			Quantity: quantity,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
