package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBranchesQueryHandler reads the branch list from the database.
type GetBranchesQueryHandler struct {
	db *gorm.DB
}

// NewGetBranchesQueryHandler creates a handler for branch list reads.
func NewGetBranchesQueryHandler(db *gorm.DB) GetBranchesQueryHandler {
	return GetBranchesQueryHandler{db: db}
}

// Handle returns all branches ordered by name.
func (h GetBranchesQueryHandler) Handle(
	ctx context.Context,
	query GetBranchesQuery,
) ([]GetBranchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			phone,
			manager_id
		FROM branches
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := make([]GetBranchesQueryResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			address   string
			phone     string
			managerID *uuid.UUID
		)

		if err = rows.Scan(&id, &name, &address, &phone, &managerID); err != nil {
			return nil, err
		}

		branchID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		var manager *kernel.UUID
		if managerID != nil {
			mID, mErr := kernel.UUIDFromBytes((*managerID)[:])
			if mErr != nil {
				return nil, mErr
			}
			manager = &mID
		}

		branches = append(branches, GetBranchesQueryResponse{
			ID:        branchID,
			Name:      name,
			Address:   address,
			Phone:     phone,
			ManagerID: manager,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return branches, nil
}
