package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceCustomerOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	branchID := kernel.NewUUID()
	customer := customerPrincipal(t)
	requests := testRequests()
	cmd, err := commands.NewPlaceCustomerOrderCommand(kernel.NewUUID(), customer, branchID,
		customer.Name(), order.PaymentCreditCard, requests)
	require.NoError(t, err)

	branchRepo := new(MockBranchRepository)
	menuRepo := new(MockMenuItemRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BranchRepository").Return(branchRepo).Once(),
		branchRepo.On("Get", mock.Anything, branchID).Return(testBranch(t, branchID), nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Reserve", mock.Anything, branchID, requests).Return(reservedFor(t, requests), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Pending && o.IsOwnedBy(customer.UserID())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceCustomerOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	branchRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceCustomerOrderCommandHandler_Handle_UnknownBranch(t *testing.T) {
	ctx := t.Context()
	branchID := kernel.NewUUID()
	customer := customerPrincipal(t)
	cmd, err := commands.NewPlaceCustomerOrderCommand(kernel.NewUUID(), customer, branchID,
		customer.Name(), order.PaymentCash, testRequests())
	require.NoError(t, err)

	branchRepo := new(MockBranchRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BranchRepository").Return(branchRepo).Once(),
		branchRepo.On("Get", mock.Anything, branchID).
			Return(nil, errs.NewObjectNotFoundError("branchId", branchID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceCustomerOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "branchId", notFound.ParamName)
	// nothing gets reserved against a branch that does not exist
	uow.AssertNotCalled(t, "MenuItemRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPlaceCustomerOrderCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()
	branchID := kernel.NewUUID()
	customer := customerPrincipal(t)
	requests := testRequests()
	cmd, err := commands.NewPlaceCustomerOrderCommand(kernel.NewUUID(), customer, branchID,
		customer.Name(), order.PaymentCash, requests)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("menuItemId", requests[0].MenuItemID)

	branchRepo := new(MockBranchRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BranchRepository").Return(branchRepo).Once(),
		branchRepo.On("Get", mock.Anything, branchID).Return(testBranch(t, branchID), nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Reserve", mock.Anything, branchID, requests).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceCustomerOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewPlaceCustomerOrderCommand_Validation(t *testing.T) {
	customer := customerPrincipal(t)
	branchID := kernel.NewUUID()

	t.Run("should reject invalid payment method", func(t *testing.T) {
		_, err := commands.NewPlaceCustomerOrderCommand(kernel.NewUUID(), customer, branchID,
			customer.Name(), order.PaymentMethod("GOLD"), testRequests())
		require.Error(t, err)
	})

	t.Run("should reject unconstructed principal", func(t *testing.T) {
		var notConstructed access.Principal

		_, err := commands.NewPlaceCustomerOrderCommand(kernel.NewUUID(), notConstructed, branchID,
			customer.Name(), order.PaymentCash, testRequests())
		require.Error(t, err)
	})
}
