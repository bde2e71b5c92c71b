// Package http is the inbound HTTP adapter. It authenticates callers, checks
// role access at the route level, translates request bodies into commands and
// queries, and maps domain errors to status codes. Branch-level access checks
// live below, in the application layer.
package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/access"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeWalkInOrderHandler     commands.PlaceWalkInOrderCommandHandler
	placeCustomerOrderHandler   commands.PlaceCustomerOrderCommandHandler
	confirmPaymentHandler       commands.ConfirmPaymentCommandHandler
	cashierConfirmOrderHandler  commands.CashierConfirmOrderCommandHandler
	advanceKitchenStatusHandler commands.AdvanceKitchenStatusCommandHandler
	confirmCollectionHandler    commands.ConfirmCollectionCommandHandler
	addMenuItemHandler          commands.AddMenuItemCommandHandler
	restockMenuItemHandler      commands.RestockMenuItemCommandHandler
	changeMenuItemPriceHandler  commands.ChangeMenuItemPriceCommandHandler
	createBranchHandler         commands.CreateBranchCommandHandler
	assignBranchManagerHandler  commands.AssignBranchManagerCommandHandler

	// Query handlers
	getPendingOrdersHandler  queries.GetPendingOrdersQueryHandler
	getKitchenOrdersHandler  queries.GetKitchenOrdersQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getStaffOrdersHandler    queries.GetStaffOrdersQueryHandler
	getMenuItemsHandler      queries.GetMenuItemsQueryHandler
	getBranchesHandler       queries.GetBranchesQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	placeWalkInOrderHandler commands.PlaceWalkInOrderCommandHandler,
	placeCustomerOrderHandler commands.PlaceCustomerOrderCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	cashierConfirmOrderHandler commands.CashierConfirmOrderCommandHandler,
	advanceKitchenStatusHandler commands.AdvanceKitchenStatusCommandHandler,
	confirmCollectionHandler commands.ConfirmCollectionCommandHandler,
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	restockMenuItemHandler commands.RestockMenuItemCommandHandler,
	changeMenuItemPriceHandler commands.ChangeMenuItemPriceCommandHandler,
	createBranchHandler commands.CreateBranchCommandHandler,
	assignBranchManagerHandler commands.AssignBranchManagerCommandHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getKitchenOrdersHandler queries.GetKitchenOrdersQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getStaffOrdersHandler queries.GetStaffOrdersQueryHandler,
	getMenuItemsHandler queries.GetMenuItemsQueryHandler,
	getBranchesHandler queries.GetBranchesQueryHandler,
) *Server {
	return &Server{
		placeWalkInOrderHandler:     placeWalkInOrderHandler,
		placeCustomerOrderHandler:   placeCustomerOrderHandler,
		confirmPaymentHandler:       confirmPaymentHandler,
		cashierConfirmOrderHandler:  cashierConfirmOrderHandler,
		advanceKitchenStatusHandler: advanceKitchenStatusHandler,
		confirmCollectionHandler:    confirmCollectionHandler,
		addMenuItemHandler:          addMenuItemHandler,
		restockMenuItemHandler:      restockMenuItemHandler,
		changeMenuItemPriceHandler:  changeMenuItemPriceHandler,
		createBranchHandler:         createBranchHandler,
		assignBranchManagerHandler:  assignBranchManagerHandler,
		getPendingOrdersHandler:     getPendingOrdersHandler,
		getKitchenOrdersHandler:     getKitchenOrdersHandler,
		getCustomerOrdersHandler:    getCustomerOrdersHandler,
		getStaffOrdersHandler:       getStaffOrdersHandler,
		getMenuItemsHandler:         getMenuItemsHandler,
		getBranchesHandler:          getBranchesHandler,
	}
}

// RegisterRoutes wires the API routes. Role gates guard each route; branch
// scoping happens in the use cases.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", auth)

	tillStaff := RequireRoles(access.RoleCashier, access.RoleBranchManager)
	kitchenStaff := RequireRoles(access.RoleChef, access.RoleBranchManager)
	anyStaff := RequireRoles(access.RoleAdmin, access.RoleHeadquarterManager,
		access.RoleBranchManager, access.RoleChef, access.RoleCashier)
	menuManagers := RequireRoles(access.RoleAdmin, access.RoleHeadquarterManager,
		access.RoleBranchManager)
	headOffice := RequireRoles(access.RoleAdmin, access.RoleHeadquarterManager)
	customers := RequireRoles(access.RoleCustomer)

	api.POST("/orders/walk-in", s.PlaceWalkInOrder, tillStaff)
	api.POST("/orders/customer", s.PlaceCustomerOrder, customers)
	api.POST("/orders/:id/confirm-payment", s.ConfirmPayment, customers)
	api.POST("/orders/:id/confirm-collection", s.ConfirmCollection, customers)
	api.POST("/orders/:id/cashier-confirm", s.CashierConfirmOrder, tillStaff)
	api.POST("/orders/:id/status", s.AdvanceKitchenStatus, kitchenStaff)
	api.GET("/orders", s.GetStaffOrders, anyStaff)
	api.GET("/orders/pending", s.GetPendingOrders, tillStaff)
	api.GET("/orders/kitchen", s.GetKitchenOrders, kitchenStaff)
	api.GET("/orders/my", s.GetMyOrders, customers)

	api.GET("/menu", s.GetMenuItems)
	api.POST("/menu", s.AddMenuItem, menuManagers)
	api.POST("/menu/:id/restock", s.RestockMenuItem, menuManagers)
	api.PUT("/menu/:id/price", s.ChangeMenuItemPrice, menuManagers)

	api.GET("/branches", s.GetBranches)
	api.POST("/branches", s.CreateBranch, headOffice)
	api.POST("/branches/:id/manager", s.AssignBranchManager, headOffice)
}
