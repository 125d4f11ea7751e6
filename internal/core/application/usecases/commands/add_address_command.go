package commands

import (
	"errors"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/pkg/guard"
)

var ErrAddAddressCommandIsNotConstructed = errors.New(
	"AddAddressCommand must be created via NewAddAddressCommand constructor",
)

// AddAddressCommand represents a request to attach a new service address to an
// existing customer.
type AddAddressCommand struct { //nolint:recvcheck //using for validation
	addressID  kernel.UUID
	customerID kernel.UUID
	address    AddressData

	guard guard.ConstructorGuard
}

// NewAddAddressCommand creates a command to attach a new address.
func NewAddAddressCommand(
	addressID, customerID kernel.UUID,
	address AddressData,
) (AddAddressCommand, error) {
	addressCommand := AddAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addressCommand.setAddressID(addressID),
		addressCommand.setCustomerID(customerID),
	); err != nil {
		return AddAddressCommand{}, err
	}

	addressCommand.address = address

	return addressCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddAddressCommandIsNotConstructed)
}

// AddressID returns the identifier for the new address.
func (c AddAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

// CustomerID returns the identifier of the owning customer.
func (c AddAddressCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Address returns the address fields.
func (c AddAddressCommand) Address() AddressData {
	return c.address
}

func (c *AddAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *AddAddressCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
