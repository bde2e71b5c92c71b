package commands_test

import (
	"context"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/branch"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, from order.Status) error {
	args := m.Called(ctx, o, from)
	return args.Error(0)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Reserve(
	ctx context.Context, branchID kernel.UUID, requests []menu.ReservationRequest,
) ([]menu.ReservedItem, error) {
	args := m.Called(ctx, branchID, requests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]menu.ReservedItem), args.Error(1)
}

type MockBranchRepository struct{ mock.Mock }

func (m *MockBranchRepository) Add(ctx context.Context, b *branch.Branch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBranchRepository) Update(ctx context.Context, b *branch.Branch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBranchRepository) Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*branch.Branch), args.Error(1)
}

// MockUoW satisfies every unit of work shape the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

func (m *MockUoW) BranchRepository() ports.BranchRepository {
	args := m.Called()
	return args.Get(0).(ports.BranchRepository)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

type MockBranchUoWFactory struct{ mock.Mock }

func (m *MockBranchUoWFactory) Create() commands.BranchUoW {
	args := m.Called()
	return args.Get(0).(commands.BranchUoW)
}

func staffPrincipal(t *testing.T, role access.Role, branchID kernel.UUID) access.Principal {
	t.Helper()
	p, err := access.NewPrincipal(kernel.NewUUID(), "Staff Member", role, &branchID)
	require.NoError(t, err)
	return p
}

func customerPrincipal(t *testing.T) access.Principal {
	t.Helper()
	p, err := access.NewPrincipal(kernel.NewUUID(), "Alice", access.RoleCustomer, nil)
	require.NoError(t, err)
	return p
}

func adminPrincipal(t *testing.T) access.Principal {
	t.Helper()
	p, err := access.NewPrincipal(kernel.NewUUID(), "Admin", access.RoleAdmin, nil)
	require.NoError(t, err)
	return p
}

func testBranch(t *testing.T, branchID kernel.UUID) *branch.Branch {
	t.Helper()
	b, err := branch.NewBranch(branchID, "Riverside", "1 Quay St", "+66-2-000-0001")
	require.NoError(t, err)
	return b
}

func testRequests() []menu.ReservationRequest {
	return []menu.ReservationRequest{
		{MenuItemID: kernel.NewUUID(), Quantity: 2},
		{MenuItemID: kernel.NewUUID(), Quantity: 1},
	}
}

func reservedFor(t *testing.T, requests []menu.ReservationRequest) []menu.ReservedItem {
	t.Helper()
	price, err := kernel.NewMoney(1250)
	require.NoError(t, err)

	reserved := make([]menu.ReservedItem, 0, len(requests))
	for _, r := range requests {
		reserved = append(reserved, menu.ReservedItem{
			MenuItemID: r.MenuItemID,
			Name:       "Item",
			Quantity:   r.Quantity,
			UnitPrice:  price,
		})
	}
	return reserved
}

func pendingOrder(t *testing.T, customer access.Principal, branchID kernel.UUID) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(900)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), "Soup", 1, price)
	require.NoError(t, err)

	o, err := order.NewCustomerOrder(kernel.NewUUID(), customer.UserID(), branchID,
		customer.Name(), order.PaymentCash, []order.Line{line})
	require.NoError(t, err)
	return o
}
