// Package menurepo implements menu item persistence over GORM.
//
// Reserve is the hot path: stock is decremented with a single conditional
// UPDATE per item, so the database itself arbitrates concurrent orders and
// the counter can never go below zero.
package menurepo

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker notifies the unit of work about modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate interface{})
}

// GormMenuItemRepository persists MenuItem aggregates using GORM.
type GormMenuItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormMenuItemRepository creates a menu item repository bound to the given
// connection, which may be a transaction.
func NewGormMenuItemRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db, tracker: tracker}
}

// Add inserts a new menu item.
func (r *GormMenuItemRepository) Add(ctx context.Context, aggregate *menu.MenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the current state of an existing menu item.
func (r *GormMenuItemRepository) Update(ctx context.Context, aggregate *menu.MenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":        dto.Name,
			"price_cents": dto.PriceCents,
			"quantity":    dto.Quantity,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItemId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads a menu item by ID.
func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItemId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Reserve atomically decrements stock for every requested item at the given
// branch and returns the reserved items with the name and unit price captured
// at this moment.
//
// Each decrement is a conditional UPDATE that only matches while enough stock
// remains, so concurrent reservations serialize on the row and can never
// oversell. The first item that cannot be reserved aborts the whole call;
// the caller's transaction rollback releases any decrements already applied.
func (r *GormMenuItemRepository) Reserve(
	ctx context.Context,
	branchID kernel.UUID,
	requests []menu.ReservationRequest,
) ([]menu.ReservedItem, error) {
	if err := branchID.Validate(); err != nil {
		return nil, err
	}

	reserved := make([]menu.ReservedItem, 0, len(requests))
	for _, request := range requests {
		var (
			name       string
			priceCents int64
		)

		row := r.db.WithContext(ctx).Raw(`
			UPDATE menu_items
			SET quantity = quantity - ?
			WHERE id = ? AND branch_id = ? AND quantity >= ?
			RETURNING name, price_cents
		`, request.Quantity, request.MenuItemID.Bytes(), branchID.Bytes(), request.Quantity).Row()

		if err := row.Scan(&name, &priceCents); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, r.reservationFailure(ctx, branchID, request)
			}
			return nil, err
		}

		unitPrice, err := kernel.NewMoney(priceCents)
		if err != nil {
			return nil, err
		}

		reserved = append(reserved, menu.ReservedItem{
			MenuItemID: request.MenuItemID,
			Name:       name,
			Quantity:   request.Quantity,
			UnitPrice:  unitPrice,
		})
	}

	return reserved, nil
}

// reservationFailure distinguishes an unknown item from insufficient stock
// after a conditional decrement matched no rows.
func (r *GormMenuItemRepository) reservationFailure(
	ctx context.Context,
	branchID kernel.UUID,
	request menu.ReservationRequest,
) error {
	var dto MenuItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND branch_id = ?", request.MenuItemID.Bytes(), branchID.Bytes()).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("menuItemId", request.MenuItemID)
	}
	if err != nil {
		return err
	}

	return menu.NewInsufficientStockError(request.MenuItemID, dto.Name, dto.Quantity, request.Quantity)
}
