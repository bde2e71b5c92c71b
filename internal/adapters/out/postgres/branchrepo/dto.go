package branchrepo

import (
	"restaurant/internal/core/domain/model/branch"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BranchDTO represents the database row for a branch. The unique index on
// ManagerID enforces one branch per manager at the storage level.
type BranchDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Address   string
	Phone     string
	ManagerID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
}

// TableName overrides the default GORM table name.
func (BranchDTO) TableName() string {
	return "branches"
}

func fromDomain(aggregate *branch.Branch) BranchDTO {
	dto := BranchDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Address: aggregate.Address(),
		Phone:   aggregate.Phone(),
	}

	if managerID := aggregate.Manager(); managerID != nil {
		id := managerID.Bytes()
		dto.ManagerID = &id
	}

	return dto
}

func toDomain(dto BranchDTO) (*branch.Branch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var managerID *kernel.UUID
	if dto.ManagerID != nil {
		mID, mErr := kernel.UUIDFromBytes((*dto.ManagerID)[:])
		if mErr != nil {
			return nil, mErr
		}
		managerID = &mID
	}

	return branch.RestoreBranch(id, dto.Name, dto.Address, dto.Phone, managerID)
}
