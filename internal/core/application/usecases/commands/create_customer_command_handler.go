package commands

import (
	"context"
	"errors"

	"castlecare/internal/core/domain/model/customer"
	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/pkg/errs"
)

// ErrEmailIsAlreadyInUse is returned when registering a customer or worker
// under an email that another entity of the same kind already holds.
var ErrEmailIsAlreadyInUse = errors.New("email is already in use")

// CreateCustomerCommandHandler registers new customers, enforcing email
// uniqueness and attaching any initial addresses atomically.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
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

	repo := uow.CustomerRepository()

	_, err := repo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return errs.NewValueIsInvalidErrorWithCause("email", ErrEmailIsAlreadyInUse)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := customer.NewCustomer(
		cmd.CustomerID(), cmd.FirstName(), cmd.LastName(),
		cmd.Email(), cmd.Phone(),
	)
	if err != nil {
		return err
	}

	for _, data := range cmd.Addresses() {
		address, addrErr := customer.NewAddress(
			kernel.NewUUID(), cmd.CustomerID(),
			data.Street, data.City, data.State, data.Zip,
		)
		if addrErr != nil {
			return addrErr
		}
		if addrErr = aggregate.AddAddress(address); addrErr != nil {
			return addrErr
		}
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
