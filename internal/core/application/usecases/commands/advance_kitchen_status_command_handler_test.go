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

func confirmedOrder(t *testing.T, branchID kernel.UUID) *order.Order {
	t.Helper()
	o := pendingOrder(t, customerPrincipal(t), branchID)
	require.NoError(t, o.Confirm(kernel.NewUUID()))
	return o
}

func TestAdvanceKitchenStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	branchID := kernel.NewUUID()
	chef := staffPrincipal(t, access.RoleChef, branchID)
	o := confirmedOrder(t, branchID)
	cmd, err := commands.NewAdvanceKitchenStatusCommand(o.ID(), order.Preparing, chef)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("UpdateStatus", mock.Anything, o, order.Confirmed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceKitchenStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Preparing, o.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceKitchenStatusCommandHandler_Handle_BackwardMove(t *testing.T) {
	ctx := t.Context()
	branchID := kernel.NewUUID()
	chef := staffPrincipal(t, access.RoleChef, branchID)
	o := confirmedOrder(t, branchID)
	require.NoError(t, o.AdvanceKitchen(order.Ready))

	cmd, err := commands.NewAdvanceKitchenStatusCommand(o.ID(), order.Preparing, chef)
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

	h := commands.NewAdvanceKitchenStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrAlreadyProcessed)
	require.Equal(t, order.Ready, o.Status())
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdvanceKitchenStatusCommandHandler_Handle_StaleRead(t *testing.T) {
	// Another request moved the order between this handler's read and write;
	// the conditional update reports it as an ErrAlreadyProcessed wrap.
	ctx := t.Context()
	branchID := kernel.NewUUID()
	chef := staffPrincipal(t, access.RoleChef, branchID)
	o := confirmedOrder(t, branchID)
	cmd, err := commands.NewAdvanceKitchenStatusCommand(o.ID(), order.Preparing, chef)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("UpdateStatus", mock.Anything, o, order.Confirmed).Return(order.ErrAlreadyProcessed).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceKitchenStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrAlreadyProcessed)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewAdvanceKitchenStatusCommand_RejectsUnknownTarget(t *testing.T) {
	chef := staffPrincipal(t, access.RoleChef, kernel.NewUUID())

	_, err := commands.NewAdvanceKitchenStatusCommand(kernel.NewUUID(), order.Unknown, chef)
	require.Error(t, err)
}
