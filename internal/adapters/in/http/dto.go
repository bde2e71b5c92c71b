package http

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// OrderItemRequest is one cart position in an order placement request.
type OrderItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// PlaceWalkInOrderRequest records a till sale at the cashier's own branch.
type PlaceWalkInOrderRequest struct {
	CustomerName string             `json:"customer_name"`
	Items        []OrderItemRequest `json:"items"`
}

// PlaceCustomerOrderRequest places a self-service order at a chosen branch.
// CustomerName is optional; the name from the auth token is used when absent.
type PlaceCustomerOrderRequest struct {
	BranchID      string             `json:"branch_id"`
	CustomerName  string             `json:"customer_name,omitempty"`
	PaymentMethod string             `json:"payment_method"`
	Items         []OrderItemRequest `json:"items"`
}

// AdvanceStatusRequest moves an order forward in the kitchen pipeline.
type AdvanceStatusRequest struct {
	Status string `json:"status"`
}

// AddMenuItemRequest creates a menu item at a branch.
type AddMenuItemRequest struct {
	BranchID   string `json:"branch_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// RestockMenuItemRequest tops up stock for a menu item.
type RestockMenuItemRequest struct {
	Amount int `json:"amount"`
}

// ChangeMenuItemPriceRequest sets a new price for a menu item.
type ChangeMenuItemPriceRequest struct {
	PriceCents int64 `json:"price_cents"`
}

// CreateBranchRequest opens a new branch.
type CreateBranchRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// AssignBranchManagerRequest assigns a manager to a branch.
type AssignBranchManagerRequest struct {
	ManagerID string `json:"manager_id"`
}

// CreatedResponse reports the identifier of a freshly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// PendingOrderResponse is the cashier's confirmation queue entry.
type PendingOrderResponse struct {
	ID            string    `json:"id"`
	BranchID      string    `json:"branch_id"`
	CustomerName  string    `json:"customer_name"`
	PaymentMethod string    `json:"payment_method"`
	TotalCents    int64     `json:"total_cents"`
	CreatedAt     time.Time `json:"created_at"`
}

// KitchenLineResponse is one position on a kitchen ticket.
type KitchenLineResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// KitchenOrderResponse is one ticket on the kitchen display.
type KitchenOrderResponse struct {
	ID           string                `json:"id"`
	CustomerName string                `json:"customer_name"`
	Status       string                `json:"status"`
	CreatedAt    time.Time             `json:"created_at"`
	Lines        []KitchenLineResponse `json:"lines"`
}

// CustomerOrderResponse is the customer's view of one of their orders.
type CustomerOrderResponse struct {
	ID            string    `json:"id"`
	BranchID      string    `json:"branch_id"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	TotalCents    int64     `json:"total_cents"`
	CreatedAt     time.Time `json:"created_at"`
}

// StaffOrderResponse is the staff view of one order.
type StaffOrderResponse struct {
	ID            string    `json:"id"`
	BranchID      string    `json:"branch_id"`
	CustomerName  string    `json:"customer_name"`
	CashierID     *string   `json:"cashier_id,omitempty"`
	Status        string    `json:"status"`
	PaymentMethod *string   `json:"payment_method,omitempty"`
	TotalCents    int64     `json:"total_cents"`
	CreatedAt     time.Time `json:"created_at"`
	WalkIn        bool      `json:"walk_in"`
}

// MenuItemResponse is one menu position with live price and stock.
type MenuItemResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// BranchResponse is one branch with its manager assignment.
type BranchResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	ManagerID *string `json:"manager_id,omitempty"`
}

func toReservationRequests(items []OrderItemRequest) ([]menu.ReservationRequest, error) {
	requests := make([]menu.ReservationRequest, 0, len(items))
	for _, item := range items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return nil, err
		}
		requests = append(requests, menu.ReservationRequest{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
		})
	}
	return requests, nil
}

func uuidStringPtr(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
