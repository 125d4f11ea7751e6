package commands_test

import (
	"errors"
	"testing"
	"time"

	"castlecare/internal/core/application/usecases/commands"
	"castlecare/internal/core/domain/model/order"
	"castlecare/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEscalatePendingOrdersCommandHandler_Handle_PublishesStaleOrders(t *testing.T) {
	ctx := t.Context()
	stale := []*order.Order{pendingLawncareOrder(t), pendingLawncareOrder(t)}

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPendingOlderThan", ctx, mock.AnythingOfType("time.Time")).Return(stale, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Twice(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEscalatePendingOrdersCommandHandler(factory, publisher, 30*time.Minute, testLogger())
	err := handler.Handle(ctx, commands.NewEscalatePendingOrdersCommand())

	require.NoError(t, err)
	publisher.AssertExpectations(t)

	event := publisher.Calls[0].Arguments[1].(ports.OrderEvent)
	require.Equal(t, stale[0].ID().String(), event.OrderID)
	require.Equal(t, "PENDING", event.Status)
}

func TestEscalatePendingOrdersCommandHandler_Handle_PublishFailureDoesNotAbortSweep(t *testing.T) {
	ctx := t.Context()
	stale := []*order.Order{pendingLawncareOrder(t), pendingLawncareOrder(t)}

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPendingOlderThan", ctx, mock.AnythingOfType("time.Time")).Return(stale, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.AnythingOfType("ports.OrderEvent")).
			Return(errors.New("broker unavailable")).Twice(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEscalatePendingOrdersCommandHandler(factory, publisher, 30*time.Minute, testLogger())
	err := handler.Handle(ctx, commands.NewEscalatePendingOrdersCommand())

	require.NoError(t, err)
	publisher.AssertExpectations(t)
}
