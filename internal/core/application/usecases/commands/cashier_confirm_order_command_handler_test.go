package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCashierConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	branchID := kernel.NewUUID()
	cashier := staffPrincipal(t, access.RoleCashier, branchID)
	o := pendingOrder(t, customerPrincipal(t), branchID)
	cmd, err := commands.NewCashierConfirmOrderCommand(o.ID(), cashier)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("UpdateStatus", mock.Anything, o, order.Pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCashierConfirmOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Confirmed, o.Status())
	require.NotNil(t, o.Cashier())
	require.True(t, o.Cashier().IsEqual(cashier.UserID()))
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCashierConfirmOrderCommandHandler_Handle_WrongBranch(t *testing.T) {
	ctx := t.Context()
	cashier := staffPrincipal(t, access.RoleCashier, kernel.NewUUID())
	o := pendingOrder(t, customerPrincipal(t), kernel.NewUUID()) // different branch
	cmd, err := commands.NewCashierConfirmOrderCommand(o.ID(), cashier)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCashierConfirmOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, access.ErrForbidden)
	require.Equal(t, order.Pending, o.Status())
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCashierConfirmOrderCommandHandler_Handle_AlreadyConfirmed(t *testing.T) {
	ctx := t.Context()
	branchID := kernel.NewUUID()
	cashier := staffPrincipal(t, access.RoleCashier, branchID)
	o := pendingOrder(t, customerPrincipal(t), branchID)
	require.NoError(t, o.Confirm(kernel.NewUUID()))

	cmd, err := commands.NewCashierConfirmOrderCommand(o.ID(), cashier)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCashierConfirmOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrAlreadyProcessed)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCashierConfirmOrderCommandHandler_Handle_NoBranchAssigned(t *testing.T) {
	ctx := t.Context()
	unassigned, err := access.NewPrincipal(kernel.NewUUID(), "Cashier", access.RoleCashier, nil)
	require.NoError(t, err)
	cmd, err := commands.NewCashierConfirmOrderCommand(kernel.NewUUID(), unassigned)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)

	h := commands.NewCashierConfirmOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, access.ErrNoBranchAssigned)
	factory.AssertNotCalled(t, "Create")
}
