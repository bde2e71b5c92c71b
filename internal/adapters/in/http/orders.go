package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// PlaceWalkInOrder handles POST /api/v1/orders/walk-in. The sale is recorded
// against the cashier's own branch and completed immediately.
func (s *Server) PlaceWalkInOrder(c echo.Context) error {
	var req PlaceWalkInOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	principal, _ := principalFrom(c)

	items, err := toReservationRequests(req.Items)
	if err != nil {
		return writeDomainError(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceWalkInOrderCommand(orderID, principal, req.CustomerName, items)
	if err != nil {
		return writeDomainError(c, err)
	}

	if err := s.placeWalkInOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// PlaceCustomerOrder handles POST /api/v1/orders/customer.
func (s *Server) PlaceCustomerOrder(c echo.Context) error {
	var req PlaceCustomerOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	principal, _ := principalFrom(c)

	branchID, err := kernel.UUIDFromString(req.BranchID)
	if err != nil {
		return writeDomainError(c, err)
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return writeDomainError(c, err)
	}

	items, err := toReservationRequests(req.Items)
	if err != nil {
		return writeDomainError(c, err)
	}

	customerName := req.CustomerName
	if customerName == "" {
		customerName = principal.Name()
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceCustomerOrderCommand(orderID, principal, branchID,
		customerName, paymentMethod, items)
	if err != nil {
		return writeDomainError(c, err)
	}

	if err := s.placeCustomerOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// ConfirmPayment handles POST /api/v1/orders/:id/confirm-payment. Repeating
// the confirmation while the order is still pending is a no-op; repeating it
// after a cashier confirmed the order is a conflict.
func (s *Server) ConfirmPayment(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}

	principal, _ := principalFrom(c)

	cmd, err := commands.NewConfirmPaymentCommand(orderID, principal)
	if err != nil {
		return writeDomainError(c, err)
	}

	if err := s.confirmPaymentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeDomainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ConfirmCollection handles POST /api/v1/orders/:id/confirm-collection.
func (s *Server) ConfirmCollection(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}

	principal, _ := principalFrom(c)

	cmd, err := commands.NewConfirmCollectionCommand(orderID, principal)
	if err != nil {
		return writeDomainError(c, err)
	}

	if err := s.confirmCollectionHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeDomainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CashierConfirmOrder handles POST /api/v1/orders/:id/cashier-confirm.
func (s *Server) CashierConfirmOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}

	principal, _ := principalFrom(c)

	cmd, err := commands.NewCashierConfirmOrderCommand(orderID, principal)
	if err != nil {
		return writeDomainError(c, err)
	}

	if err := s.cashierConfirmOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeDomainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AdvanceKitchenStatus handles POST /api/v1/orders/:id/status.
func (s *Server) AdvanceKitchenStatus(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}

	var req AdvanceStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeDomainError(c, err)
	}

	principal, _ := principalFrom(c)

	cmd, err := commands.NewAdvanceKitchenStatusCommand(orderID, target, principal)
	if err != nil {
		return writeDomainError(c, err)
	}

	if err := s.advanceKitchenStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeDomainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetStaffOrders handles GET /api/v1/orders - the full order list within the
// caller's branch scope.
func (s *Server) GetStaffOrders(c echo.Context) error {
	principal, _ := principalFrom(c)

	scope, err := access.ScopeFor(principal)
	if err != nil {
		return writeDomainError(c, err)
	}

	orders, err := s.getStaffOrdersHandler.Handle(c.Request().Context(),
		queries.NewGetStaffOrdersQuery(scope))
	if err != nil {
		return writeDomainError(c, err)
	}

	response := make([]StaffOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = StaffOrderResponse{
			ID:            o.ID.String(),
			BranchID:      o.BranchID.String(),
			CustomerName:  o.CustomerName,
			CashierID:     uuidStringPtr(o.CashierID),
			Status:        o.Status,
			PaymentMethod: o.PaymentMethod,
			TotalCents:    o.Total.Cents(),
			CreatedAt:     o.CreatedAt,
			WalkIn:        o.WalkIn,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetPendingOrders handles GET /api/v1/orders/pending - the cashier's
// confirmation queue, oldest first.
func (s *Server) GetPendingOrders(c echo.Context) error {
	principal, _ := principalFrom(c)

	scope, err := access.ScopeFor(principal)
	if err != nil {
		return writeDomainError(c, err)
	}

	orders, err := s.getPendingOrdersHandler.Handle(c.Request().Context(),
		queries.NewGetPendingOrdersQuery(scope))
	if err != nil {
		return writeDomainError(c, err)
	}

	response := make([]PendingOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = PendingOrderResponse{
			ID:            o.ID.String(),
			BranchID:      o.BranchID.String(),
			CustomerName:  o.CustomerName,
			PaymentMethod: o.PaymentMethod,
			TotalCents:    o.Total.Cents(),
			CreatedAt:     o.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetKitchenOrders handles GET /api/v1/orders/kitchen - tickets for the
// kitchen display, without prices.
func (s *Server) GetKitchenOrders(c echo.Context) error {
	principal, _ := principalFrom(c)

	scope, err := access.ScopeFor(principal)
	if err != nil {
		return writeDomainError(c, err)
	}

	orders, err := s.getKitchenOrdersHandler.Handle(c.Request().Context(),
		queries.NewGetKitchenOrdersQuery(scope))
	if err != nil {
		return writeDomainError(c, err)
	}

	response := make([]KitchenOrderResponse, len(orders))
	for i, o := range orders {
		lines := make([]KitchenLineResponse, len(o.Lines))
		for j, line := range o.Lines {
			lines[j] = KitchenLineResponse{Name: line.Name, Quantity: line.Quantity}
		}
		response[i] = KitchenOrderResponse{
			ID:           o.ID.String(),
			CustomerName: o.CustomerName,
			Status:       o.Status,
			CreatedAt:    o.CreatedAt,
			Lines:        lines,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetMyOrders handles GET /api/v1/orders/my - the customer's own history,
// newest first.
func (s *Server) GetMyOrders(c echo.Context) error {
	principal, _ := principalFrom(c)

	query, err := queries.NewGetCustomerOrdersQuery(principal.UserID())
	if err != nil {
		return writeDomainError(c, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeDomainError(c, err)
	}

	response := make([]CustomerOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = CustomerOrderResponse{
			ID:            o.ID.String(),
			BranchID:      o.BranchID.String(),
			Status:        o.Status,
			PaymentMethod: o.PaymentMethod,
			TotalCents:    o.Total.Cents(),
			CreatedAt:     o.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}
