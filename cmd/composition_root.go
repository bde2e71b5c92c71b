package cmd

import (
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/staffrepo"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateStaffDirectory() ports.StaffDirectory {
	return staffrepo.NewGormStaffDirectory(c.gormDB)
}

func (c *CompositionRoot) CreatePlaceWalkInOrderCommandHandler() commands.PlaceWalkInOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceWalkInOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceCustomerOrderCommandHandler() commands.PlaceCustomerOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceCustomerOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCashierConfirmOrderCommandHandler() commands.CashierConfirmOrderCommandHandler {
	return commands.NewCashierConfirmOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceKitchenStatusCommandHandler() commands.AdvanceKitchenStatusCommandHandler {
	return commands.NewAdvanceKitchenStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmCollectionCommandHandler() commands.ConfirmCollectionCommandHandler {
	return commands.NewConfirmCollectionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	return commands.NewAddMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateRestockMenuItemCommandHandler() commands.RestockMenuItemCommandHandler {
	return commands.NewRestockMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateChangeMenuItemPriceCommandHandler() commands.ChangeMenuItemPriceCommandHandler {
	return commands.NewChangeMenuItemPriceCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateCreateBranchCommandHandler() commands.CreateBranchCommandHandler {
	return commands.NewCreateBranchCommandHandler(c.branchUoWFactory())
}

func (c *CompositionRoot) CreateAssignBranchManagerCommandHandler() commands.AssignBranchManagerCommandHandler {
	return commands.NewAssignBranchManagerCommandHandler(c.branchUoWFactory())
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKitchenOrdersQueryHandler() queries.GetKitchenOrdersQueryHandler {
	return queries.NewGetKitchenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaffOrdersQueryHandler() queries.GetStaffOrdersQueryHandler {
	return queries.NewGetStaffOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemsQueryHandler() queries.GetMenuItemsQueryHandler {
	return queries.NewGetMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBranchesQueryHandler() queries.GetBranchesQueryHandler {
	return queries.NewGetBranchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockItemsQueryHandler() queries.GetLowStockItemsQueryHandler {
	return queries.NewGetLowStockItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) branchUoWFactory() commands.BranchUoWFactory {
	return FuncBranchUoWFactory(func() commands.BranchUoW {
		return c.uowFactory.Create()
	})
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncBranchUoWFactory func() commands.BranchUoW

func (f FuncBranchUoWFactory) Create() commands.BranchUoW {
	return f()
}
