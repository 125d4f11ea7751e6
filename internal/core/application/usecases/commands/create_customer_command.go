package commands

import (
	"errors"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrFirstNameIsRequired = errors.New("first name is required")
	ErrLastNameIsRequired  = errors.New("last name is required")
	ErrEmailIsRequired     = errors.New("email is required")
)

// AddressData carries the fields of an initial address supplied at customer
// registration time.
type AddressData struct {
	Street string
	City   string
	State  string
	Zip    string
}

// CreateCustomerCommand represents a request to register a new customer,
// optionally with initial service addresses.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	firstName  string
	lastName   string
	email      string
	phone      string
	addresses  []AddressData

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
func NewCreateCustomerCommand(
	customerID kernel.UUID,
	firstName, lastName, email, phone string,
	addresses []AddressData,
) (CreateCustomerCommand, error) {
	customerCommand := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerCommand.setCustomerID(customerID),
		customerCommand.setName(firstName, lastName),
		customerCommand.setEmail(email),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	customerCommand.phone = phone
	customerCommand.addresses = addresses

	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier for the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FirstName returns the customer's first name.
func (c CreateCustomerCommand) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c CreateCustomerCommand) LastName() string {
	return c.lastName
}

// Email returns the customer's email.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's phone number.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Addresses returns the initial addresses to register with the customer.
func (c CreateCustomerCommand) Addresses() []AddressData {
	return c.addresses
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(firstName, lastName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.firstName = firstName
	c.lastName = lastName
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}
