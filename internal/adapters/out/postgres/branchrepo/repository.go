// Package branchrepo implements branch persistence over GORM.
package branchrepo

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/branch"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint breach.
const uniqueViolation = "23505"

// aggregateTracker notifies the unit of work about modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate interface{})
}

// GormBranchRepository persists Branch aggregates using GORM.
type GormBranchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormBranchRepository creates a branch repository bound to the given
// connection, which may be a transaction.
func NewGormBranchRepository(db *gorm.DB, tracker aggregateTracker) *GormBranchRepository {
	return &GormBranchRepository{db: db, tracker: tracker}
}

// Add inserts a new branch.
func (r *GormBranchRepository) Add(ctx context.Context, aggregate *branch.Branch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return wrapManagerConflict(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the current state of an existing branch. A manager assignment
// that would give one manager two branches trips the unique index on
// manager_id and is reported as branch.ErrManagerAlreadyAssigned.
func (r *GormBranchRepository) Update(ctx context.Context, aggregate *branch.Branch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&BranchDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":       dto.Name,
			"address":    dto.Address,
			"phone":      dto.Phone,
			"manager_id": dto.ManagerID,
		})
	if result.Error != nil {
		return wrapManagerConflict(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("branchId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads a branch by ID.
func (r *GormBranchRepository) Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BranchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("branchId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func wrapManagerConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", branch.ErrManagerAlreadyAssigned, pgErr.Detail)
	}
	return err
}
