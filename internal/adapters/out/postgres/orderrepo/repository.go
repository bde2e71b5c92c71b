// Package orderrepo implements order persistence over GORM.
//
// Status changes never go through a blind save: UpdateStatus compares against
// the status the caller read, so two staff members racing on the same order
// cannot both win.
package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker notifies the unit of work about modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate interface{})
}

// GormOrderRepository persists Order aggregates using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormOrderRepository creates an order repository bound to the given
// connection, which may be a transaction.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{db: db, tracker: tracker}
}

// Add inserts a new order together with its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, lineDTOs := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&lineDTOs).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	var lineDTOs []OrderLineDTO
	if err := r.db.WithContext(ctx).
		Find(&lineDTOs, "order_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, lineDTOs)
}

// UpdateStatus writes the aggregate's status conditionally: the row is updated
// only if it still holds the status the caller read. Zero matched rows means
// someone else moved the order first, reported as order.ErrAlreadyProcessed.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	aggregate *order.Order,
	from order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	updates := map[string]any{"status": int(aggregate.Status())}
	if cashierID := aggregate.Cashier(); cashierID != nil {
		updates["cashier_id"] = cashierID.Bytes()
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), int(from)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: order %s is no longer %s",
			order.ErrAlreadyProcessed, aggregate.ID(), from)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
