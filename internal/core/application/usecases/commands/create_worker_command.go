package commands

import (
	"errors"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/pkg/guard"
)

var (
	ErrCreateWorkerCommandIsNotConstructed = errors.New(
		"CreateWorkerCommand must be created via NewCreateWorkerCommand constructor",
	)
	ErrRolesAreRequired = errors.New("at least one role is required")
)

// CreateWorkerCommand represents a request to register a new worker.
// Workers start in PENDING status and unavailable until approved.
type CreateWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID  kernel.UUID
	firstName string
	lastName  string
	age       int
	street    string
	city      string
	state     string
	zip       string
	phone     string
	email     string
	roles     []pricing.ServiceType

	guard guard.ConstructorGuard
}

// NewCreateWorkerCommand creates a command to register a worker.
// Age, email, and role-set invariants are enforced by the aggregate; the
// command checks only presence of the required fields.
func NewCreateWorkerCommand(
	workerID kernel.UUID,
	firstName, lastName string,
	age int,
	street, city, state, zip string,
	phone, email string,
	roles []pricing.ServiceType,
) (CreateWorkerCommand, error) {
	workerCommand := CreateWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		workerCommand.setWorkerID(workerID),
		workerCommand.setName(firstName, lastName),
		workerCommand.setEmail(email),
		workerCommand.setRoles(roles),
	); err != nil {
		return CreateWorkerCommand{}, err
	}

	workerCommand.age = age
	workerCommand.street = street
	workerCommand.city = city
	workerCommand.state = state
	workerCommand.zip = zip
	workerCommand.phone = phone

	return workerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkerCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkerCommandIsNotConstructed)
}

// WorkerID returns the identifier for the new worker.
func (c CreateWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// FirstName returns the worker's first name.
func (c CreateWorkerCommand) FirstName() string {
	return c.firstName
}

// LastName returns the worker's last name.
func (c CreateWorkerCommand) LastName() string {
	return c.lastName
}

// Age returns the worker's age.
func (c CreateWorkerCommand) Age() int {
	return c.age
}

// Street returns the worker's street address.
func (c CreateWorkerCommand) Street() string {
	return c.street
}

// City returns the worker's city.
func (c CreateWorkerCommand) City() string {
	return c.city
}

// State returns the worker's state.
func (c CreateWorkerCommand) State() string {
	return c.state
}

// Zip returns the worker's zip code.
func (c CreateWorkerCommand) Zip() string {
	return c.zip
}

// Phone returns the worker's phone number.
func (c CreateWorkerCommand) Phone() string {
	return c.phone
}

// Email returns the worker's email.
func (c CreateWorkerCommand) Email() string {
	return c.email
}

// Roles returns the worker's qualification roles.
func (c CreateWorkerCommand) Roles() []pricing.ServiceType {
	return c.roles
}

func (c *CreateWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *CreateWorkerCommand) setName(firstName, lastName string) error {
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

func (c *CreateWorkerCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreateWorkerCommand) setRoles(roles []pricing.ServiceType) error {
	if len(roles) == 0 {
		return ErrRolesAreRequired
	}

	c.roles = roles
	return nil
}
