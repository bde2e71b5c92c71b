package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetMenuItems handles GET /api/v1/menu?branch_id= - one branch's menu with
// live prices and stock. Open to every authenticated principal.
func (s *Server) GetMenuItems(c echo.Context) error {
	branchID, err := kernel.UUIDFromString(c.QueryParam("branch_id"))
	if err != nil {
		return writeDomainError(c, err)
	}

	query, err := queries.NewGetMenuItemsQuery(branchID)
	if err != nil {
		return writeDomainError(c, err)
	}

	items, err := s.getMenuItemsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeDomainError(c, err)
	}

	response := make([]MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = MenuItemResponse{
			ID:         item.ID.String(),
			Name:       item.Name,
			PriceCents: item.Price.Cents(),
			Quantity:   item.Quantity,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /api/v1/menu.
func (s *Server) AddMenuItem(c echo.Context) error {
	var req AddMenuItemRequest
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

	price, err := kernel.NewMoney(req.PriceCents)
	if err != nil {
		return writeDomainError(c, err)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddMenuItemCommand(itemID, branchID, req.Name,
		price, req.Quantity, principal)
	if err != nil {
		return writeDomainError(c, err)
	}

	if err := s.addMenuItemHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: itemID.String()})
}

// RestockMenuItem handles POST /api/v1/menu/:id/restock.
func (s *Server) RestockMenuItem(c echo.Context) error {
	itemID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}

	var req RestockMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	principal, _ := principalFrom(c)

	cmd, err := commands.NewRestockMenuItemCommand(itemID, req.Amount, principal)
	if err != nil {
		return writeDomainError(c, err)
	}

	if err := s.restockMenuItemHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeDomainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeMenuItemPrice handles PUT /api/v1/menu/:id/price. Orders already
// placed keep the prices captured when their stock was reserved.
func (s *Server) ChangeMenuItemPrice(c echo.Context) error {
	itemID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}

	var req ChangeMenuItemPriceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	principal, _ := principalFrom(c)

	price, err := kernel.NewMoney(req.PriceCents)
	if err != nil {
		return writeDomainError(c, err)
	}

	cmd, err := commands.NewChangeMenuItemPriceCommand(itemID, price, principal)
	if err != nil {
		return writeDomainError(c, err)
	}

	if err := s.changeMenuItemPriceHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeDomainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
