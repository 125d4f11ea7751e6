package commands_test

import (
	"testing"
	"time"

	"castlecare/internal/core/application/usecases/commands"
	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/order"
	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/core/domain/model/worker"
	"castlecare/internal/core/ports"
	"castlecare/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingLawncareOrder(t *testing.T) *order.Order {
	t.Helper()

	plan, err := pricing.NewPricingOption(
		kernel.NewUUID(), pricing.Lawncare, "Basic Lawn", "",
		decimal.NewFromFloat(49.99), pricing.Month, nil, pricing.SizeRangeLawnSmall,
	)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		plan, pricing.Lawncare, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "09:00",
	)
	require.NoError(t, err)
	return o
}

func availableWorker(t *testing.T, roles ...pricing.ServiceType) *worker.Worker {
	t.Helper()
	if len(roles) == 0 {
		roles = []pricing.ServiceType{pricing.Lawncare}
	}

	w, err := worker.NewWorker(
		kernel.NewUUID(), "Sam", "Reed", 30,
		"3 Pine Rd", "Madison", "WI", "53703",
		"555-0101", "sam@example.com", roles,
	)
	require.NoError(t, err)
	w.Approve()
	require.NoError(t, w.SetAvailability(true))
	return w
}

func TestUpdateOrderStatusCommandHandler_Handle_AcceptWithWorker(t *testing.T) {
	ctx := t.Context()
	testOrder := pendingLawncareOrder(t)
	assignee := availableWorker(t)
	workerID := assignee.ID()

	cmd, err := commands.NewUpdateOrderStatusCommand(testOrder.ID(), order.StatusAccepted, &workerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	workerRepo := new(MockWorkerRepository)
	uow := new(MockUoW)
	cache := new(MockCacheStore)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("WorkerRepository").Return(workerRepo).Once(),
		workerRepo.On("Get", ctx, workerID).Return(assignee, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cache.On("Invalidate", ctx, ports.OrderCacheKey(testOrder.ID())).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderWorkerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, cache, publisher, testLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusAccepted, testOrder.Status())
	require.NotNil(t, testOrder.WorkerID())
	assert.True(t, testOrder.WorkerID().IsEqual(workerID))
	cache.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_RoleMismatchLeavesPending(t *testing.T) {
	ctx := t.Context()
	testOrder := pendingLawncareOrder(t)
	assignee := availableWorker(t, pricing.Laundry)
	workerID := assignee.ID()

	cmd, err := commands.NewUpdateOrderStatusCommand(testOrder.ID(), order.StatusAccepted, &workerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	workerRepo := new(MockWorkerRepository)
	uow := new(MockUoW)
	cache := new(MockCacheStore)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("WorkerRepository").Return(workerRepo).Once(),
		workerRepo.On("Get", ctx, workerID).Return(assignee, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderWorkerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, cache, new(MockEventPublisher), testLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.StatusPending, testOrder.Status())
	assert.Nil(t, testOrder.WorkerID())
	uow.AssertNotCalled(t, "Commit", ctx)
	cache.AssertNotCalled(t, "Invalidate", ctx, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_AcceptWithoutWorker(t *testing.T) {
	ctx := t.Context()
	testOrder := pendingLawncareOrder(t)

	cmd, err := commands.NewUpdateOrderStatusCommand(testOrder.ID(), order.StatusAccepted, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	cache := new(MockCacheStore)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cache.On("Invalidate", ctx, ports.OrderCacheKey(testOrder.ID())).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderWorkerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, cache, publisher, testLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusAccepted, testOrder.Status())
	assert.Nil(t, testOrder.WorkerID())
}

func TestUpdateOrderStatusCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	testOrder := pendingLawncareOrder(t)

	cmd, err := commands.NewUpdateOrderStatusCommand(testOrder.ID(), order.StatusInProgress, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	cache := new(MockCacheStore)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
			Return(errs.NewVersionIsInvalidError("order")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderWorkerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, cache, new(MockEventPublisher), testLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	uow.AssertNotCalled(t, "Commit", ctx)
	cache.AssertNotCalled(t, "Invalidate", ctx, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_TerminalOrderRejected(t *testing.T) {
	ctx := t.Context()
	testOrder := pendingLawncareOrder(t)
	require.NoError(t, testOrder.ChangeStatus(order.StatusCompleted))

	cmd, err := commands.NewUpdateOrderStatusCommand(testOrder.ID(), order.StatusInProgress, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderWorkerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(
		factory, new(MockCacheStore), new(MockEventPublisher), testLogger(),
	)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrIllegalState)
	uow.AssertNotCalled(t, "Commit", ctx)
}
