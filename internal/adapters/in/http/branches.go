package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetBranches handles GET /api/v1/branches. Open to every authenticated
// principal so customers can pick where to order.
func (s *Server) GetBranches(c echo.Context) error {
	branches, err := s.getBranchesHandler.Handle(c.Request().Context(),
		queries.NewGetBranchesQuery())
	if err != nil {
		return writeDomainError(c, err)
	}

	response := make([]BranchResponse, len(branches))
	for i, b := range branches {
		response[i] = BranchResponse{
			ID:        b.ID.String(),
			Name:      b.Name,
			Address:   b.Address,
			Phone:     b.Phone,
			ManagerID: uuidStringPtr(b.ManagerID),
		}
	}

	return c.JSON(http.StatusOK, response)
}

// CreateBranch handles POST /api/v1/branches.
func (s *Server) CreateBranch(c echo.Context) error {
	var req CreateBranchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	branchID := kernel.NewUUID()
	cmd, err := commands.NewCreateBranchCommand(branchID, req.Name, req.Address, req.Phone)
	if err != nil {
		return writeDomainError(c, err)
	}

	if err := s.createBranchHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: branchID.String()})
}

// AssignBranchManager handles POST /api/v1/branches/:id/manager. Assigning a
// manager who already runs another branch is a conflict, enforced by the
// unique index on the branch table.
func (s *Server) AssignBranchManager(c echo.Context) error {
	branchID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}

	var req AssignBranchManagerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	managerID, err := kernel.UUIDFromString(req.ManagerID)
	if err != nil {
		return writeDomainError(c, err)
	}

	cmd, err := commands.NewAssignBranchManagerCommand(branchID, managerID)
	if err != nil {
		return writeDomainError(c, err)
	}

	if err := s.assignBranchManagerHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeDomainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
