package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database row for a menu item.
type MenuItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BranchID   uuid.UUID `gorm:"type:uuid;index"`
	Name       string
	PriceCents int64
	Quantity   int
}

// TableName overrides the default GORM table name.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(aggregate *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:         aggregate.ID().Bytes(),
		BranchID:   aggregate.BranchID().Bytes(),
		Name:       aggregate.Name(),
		PriceCents: aggregate.Price().Cents(),
		Quantity:   aggregate.Quantity(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(id, branchID, dto.Name, price, dto.Quantity)
}
