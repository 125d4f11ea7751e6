package commands

import (
	"context"
	"errors"

	"castlecare/internal/core/domain/model/worker"
	"castlecare/internal/pkg/errs"
)

// CreateWorkerCommandHandler registers new workers, enforcing email
// uniqueness. New workers start PENDING and unavailable.
type CreateWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewCreateWorkerCommandHandler creates a handler for worker registration.
func NewCreateWorkerCommandHandler(uowFactory WorkerUoWFactory) CreateWorkerCommandHandler {
	return CreateWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the worker registration command.
func (h CreateWorkerCommandHandler) Handle(ctx context.Context, cmd CreateWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkerRepository()

	_, err := repo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return errs.NewValueIsInvalidErrorWithCause("email", ErrEmailIsAlreadyInUse)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := worker.NewWorker(
		cmd.WorkerID(), cmd.FirstName(), cmd.LastName(), cmd.Age(),
		cmd.Street(), cmd.City(), cmd.State(), cmd.Zip(),
		cmd.Phone(), cmd.Email(), cmd.Roles(),
	)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
