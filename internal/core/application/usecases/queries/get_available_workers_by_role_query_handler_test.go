package queries_test

import (
	"context"
	"errors"
	"testing"

	"castlecare/internal/core/application/usecases/queries"
	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/core/domain/model/worker"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWorkerRepository struct{ mock.Mock }

func (m *MockWorkerRepository) Add(ctx context.Context, w *worker.Worker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkerRepository) Update(ctx context.Context, w *worker.Worker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetByEmail(ctx context.Context, email string) (*worker.Worker, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetAllAvailable(
	ctx context.Context,
	serviceType pricing.ServiceType,
) ([]*worker.Worker, error) {
	args := m.Called(ctx, serviceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*worker.Worker), args.Error(1)
}

func availableWorker(t *testing.T, email string, roles ...pricing.ServiceType) *worker.Worker {
	t.Helper()

	w, err := worker.NewWorker(
		kernel.NewUUID(), "Sam", "Reed", 30,
		"4 Pine Rd", "Madison", "WI", "53703",
		"555-0142", email, roles,
	)
	require.NoError(t, err)

	w.Approve()
	require.NoError(t, w.SetAvailability(true))
	return w
}

func TestGetAvailableWorkersByRoleQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	first := availableWorker(t, "sam@example.com", pricing.Lawncare)
	second := availableWorker(t, "kim@example.com", pricing.Lawncare, pricing.Lighting)

	repo := new(MockWorkerRepository)
	repo.On("GetAllAvailable", ctx, pricing.Lawncare).
		Return([]*worker.Worker{first, second}, nil).Once()

	query, err := queries.NewGetAvailableWorkersByRoleQuery(pricing.Lawncare)
	require.NoError(t, err)

	handler := queries.NewGetAvailableWorkersByRoleQueryHandler(repo)
	workers, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, workers, 2)
	require.Equal(t, first.ID().Bytes(), workers[0].ID)
	require.Equal(t, "sam@example.com", workers[0].Email)
	require.Equal(t, []string{"LAWNCARE"}, workers[0].Roles)
	require.True(t, workers[0].Available)
	require.Equal(t, "APPROVED", workers[0].Status)
	require.ElementsMatch(t, []string{"LAWNCARE", "LIGHTING"}, workers[1].Roles)
	repo.AssertExpectations(t)
}

func TestGetAvailableWorkersByRoleQueryHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()

	repo := new(MockWorkerRepository)
	repo.On("GetAllAvailable", ctx, pricing.Laundry).
		Return(nil, errors.New("connection reset")).Once()

	query, err := queries.NewGetAvailableWorkersByRoleQuery(pricing.Laundry)
	require.NoError(t, err)

	handler := queries.NewGetAvailableWorkersByRoleQueryHandler(repo)
	_, err = handler.Handle(ctx, query)

	require.EqualError(t, err, "connection reset")
}

func TestNewGetAvailableWorkersByRoleQuery_RejectsUnknownRole(t *testing.T) {
	_, err := queries.NewGetAvailableWorkersByRoleQuery(pricing.ServiceType("PLUMBING"))
	require.Error(t, err)
}

func TestGetAvailableWorkersByRoleQueryHandler_Handle_UnconstructedQuery(t *testing.T) {
	handler := queries.NewGetAvailableWorkersByRoleQueryHandler(new(MockWorkerRepository))
	_, err := handler.Handle(t.Context(), queries.GetAvailableWorkersByRoleQuery{})

	require.ErrorIs(t, err, queries.ErrGetAvailableWorkersByRoleQueryIsNotConstructed)
}
