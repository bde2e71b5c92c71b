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

func readyOrderFor(t *testing.T, customer access.Principal, branchID kernel.UUID) *order.Order {
	t.Helper()
	o := pendingOrder(t, customer, branchID)
	require.NoError(t, o.Confirm(kernel.NewUUID()))
	require.NoError(t, o.AdvanceKitchen(order.Ready))
	return o
}

func TestConfirmCollectionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := customerPrincipal(t)
	o := readyOrderFor(t, customer, kernel.NewUUID())
	cmd, err := commands.NewConfirmCollectionCommand(o.ID(), customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("UpdateStatus", mock.Anything, o, order.Ready).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmCollectionCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Completed, o.Status())
	orderRepo.AssertExpectations(t)
}

func TestConfirmCollectionCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	o := readyOrderFor(t, customerPrincipal(t), kernel.NewUUID())
	otherCustomer := customerPrincipal(t)
	cmd, err := commands.NewConfirmCollectionCommand(o.ID(), otherCustomer)
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

	h := commands.NewConfirmCollectionCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, access.ErrForbidden)
	require.Equal(t, order.Ready, o.Status())
}

func TestConfirmCollectionCommandHandler_Handle_AlreadyCollected(t *testing.T) {
	ctx := t.Context()
	customer := customerPrincipal(t)
	o := readyOrderFor(t, customer, kernel.NewUUID())
	require.NoError(t, o.ConfirmCollection())

	cmd, err := commands.NewConfirmCollectionCommand(o.ID(), customer)
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

	h := commands.NewConfirmCollectionCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrAlreadyProcessed)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmPaymentCommandHandler_Handle_IdempotentWhilePending(t *testing.T) {
	ctx := t.Context()
	customer := customerPrincipal(t)
	o := pendingOrder(t, customer, kernel.NewUUID())
	cmd, err := commands.NewConfirmPaymentCommand(o.ID(), customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Pending, o.Status())
}

func TestConfirmPaymentCommandHandler_Handle_AfterCashierConfirmed(t *testing.T) {
	ctx := t.Context()
	customer := customerPrincipal(t)
	o := pendingOrder(t, customer, kernel.NewUUID())
	require.NoError(t, o.Confirm(kernel.NewUUID()))

	cmd, err := commands.NewConfirmPaymentCommand(o.ID(), customer)
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

	h := commands.NewConfirmPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrAlreadyProcessed)
}
