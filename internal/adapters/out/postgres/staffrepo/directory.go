// Package staffrepo implements the staff directory over GORM. The directory
// answers one question during authentication: which branch is this staff
// member assigned to.
package staffrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffMemberDTO represents the database row for a staff member.
type StaffMemberDTO struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Role     string
	BranchID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides the default GORM table name.
func (StaffMemberDTO) TableName() string {
	return "staff_members"
}

// GormStaffDirectory reads staff assignments from the database.
type GormStaffDirectory struct {
	db *gorm.DB
}

// NewGormStaffDirectory creates a staff directory over the given connection.
func NewGormStaffDirectory(db *gorm.DB) *GormStaffDirectory {
	return &GormStaffDirectory{db: db}
}

// HomeBranch returns the branch the staff member is assigned to. Both an
// unknown user and an unassigned one come back as nil without error; whether
// that is acceptable is the caller's call.
func (d *GormStaffDirectory) HomeBranch(ctx context.Context, userID kernel.UUID) (*kernel.UUID, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto StaffMemberDTO
	err := d.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if dto.BranchID == nil {
		return nil, nil
	}

	branchID, err := kernel.UUIDFromBytes((*dto.BranchID)[:])
	if err != nil {
		return nil, err
	}

	return &branchID, nil
}
