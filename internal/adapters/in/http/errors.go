package http

import (
	"errors"
	"net/http"

	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/branch"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error body for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// InsufficientStockResponse tells the client exactly which item ran short so
// the cart can be adjusted without guessing.
type InsufficientStockResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	ItemID    string `json:"item_id"`
	ItemName  string `json:"item_name"`
	Available int    `json:"available"`
	Requested int    `json:"requested"`
}

// writeDomainError maps application and domain errors to HTTP responses in
// one place, so every handler reports the same failure the same way.
//
// The mapping:
//   - insufficient stock            400, with per-item detail
//   - invalid / missing values      400
//   - staff without a branch        400
//   - forbidden                     403
//   - object not found              404
//   - already processed / stale     409
//   - manager already assigned      409
//   - anything else                 500, message withheld
func writeDomainError(c echo.Context, err error) error {
	var stockErr *menu.InsufficientStockError
	if errors.As(err, &stockErr) {
		return c.JSON(http.StatusBadRequest, InsufficientStockResponse{
			Code:      http.StatusBadRequest,
			Message:   "Insufficient stock",
			ItemID:    stockErr.MenuItemID.String(),
			ItemName:  stockErr.Name,
			Available: stockErr.Available,
			Requested: stockErr.Requested,
		})
	}

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, access.ErrNoBranchAssigned):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})

	case errors.Is(err, access.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Operation is not permitted",
		})

	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})

	case errors.Is(err, order.ErrAlreadyProcessed),
		errors.Is(err, branch.ErrManagerAlreadyAssigned):
		return c.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})

	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}
