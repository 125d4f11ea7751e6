package commands_test

import (
	"testing"

	"castlecare/internal/core/application/usecases/commands"
	"castlecare/internal/core/domain/model/order"
	"castlecare/internal/core/ports"
	"castlecare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddProofCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := pendingLawncareOrder(t)
	require.NoError(t, testOrder.ChangeStatus(order.StatusInProgress))

	cmd, err := commands.NewAddProofCommand(testOrder.ID(), "https://img.example.com/done.jpg")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	cache := new(MockCacheStore)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cache.On("Invalidate", ctx, ports.OrderCacheKey(testOrder.ID())).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddProofCommandHandler(factory, cache, testLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, testOrder.ProofRef())
	assert.Equal(t, "https://img.example.com/done.jpg", *testOrder.ProofRef())
	cache.AssertExpectations(t)
}

func TestAddProofCommandHandler_Handle_PendingOrderRejected(t *testing.T) {
	ctx := t.Context()
	testOrder := pendingLawncareOrder(t)

	cmd, err := commands.NewAddProofCommand(testOrder.ID(), "https://img.example.com/done.jpg")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	cache := new(MockCacheStore)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddProofCommandHandler(factory, cache, testLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrIllegalState)
	assert.Nil(t, testOrder.ProofRef())
	uow.AssertNotCalled(t, "Commit", ctx)
	cache.AssertNotCalled(t, "Invalidate", ctx, mock.Anything)
}

func TestAddProofCommandHandler_Handle_EmptyProofRejected(t *testing.T) {
	_, err := commands.NewAddProofCommand(pendingLawncareOrder(t).ID(), "")
	require.ErrorIs(t, err, commands.ErrProofRefIsRequired)
}
