package commands

import (
	"errors"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/pkg/guard"
)

var ErrRemoveAddressCommandIsNotConstructed = errors.New(
	"RemoveAddressCommand must be created via NewRemoveAddressCommand constructor",
)

// RemoveAddressCommand represents a request to detach an address from its
// owning customer.
type RemoveAddressCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	addressID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveAddressCommand creates a command to detach an address.
func NewRemoveAddressCommand(customerID, addressID kernel.UUID) (RemoveAddressCommand, error) {
	addressCommand := RemoveAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addressCommand.setCustomerID(customerID),
		addressCommand.setAddressID(addressID),
	); err != nil {
		return RemoveAddressCommand{}, err
	}

	return addressCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveAddressCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAddressCommandIsNotConstructed)
}

// CustomerID returns the identifier of the owning customer.
func (c RemoveAddressCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// AddressID returns the identifier of the address to detach.
func (c RemoveAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c *RemoveAddressCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RemoveAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}
