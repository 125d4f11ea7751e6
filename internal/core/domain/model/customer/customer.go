package customer

import (
	"errors"
	"strings"
	"time"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the aggregate root for a booking customer and their addresses.
//
// Invariants:
//   - email is well-formed and non-empty (global uniqueness is enforced by
//     the repository, since it spans the whole entity set)
//   - every owned address references this customer
type Customer struct {
	id        kernel.UUID
	firstName string
	lastName  string
	email     string
	phone     string
	addresses []*Address
	createdAt time.Time

	isConstructed bool
}

// NewCustomer creates a validated customer with no addresses.
func NewCustomer(id kernel.UUID, firstName, lastName, email, phone string) (*Customer, error) {
	c := &Customer{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(firstName, lastName),
		c.setEmail(email),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer and its addresses from persistence.
func RestoreCustomer(
	id kernel.UUID,
	firstName, lastName, email, phone string,
	addresses []*Address,
	createdAt time.Time,
) (*Customer, error) {
	c, err := NewCustomer(id, firstName, lastName, email, phone)
	if err != nil {
		return nil, err
	}

	for _, address := range addresses {
		if err := address.Validate(); err != nil {
			return nil, err
		}
		if !address.BelongsTo(id) {
			return nil, errs.NewValueIsInvalidErrorWithCause("address",
				errors.New("address does not belong to the customer"))
		}
	}

	c.addresses = addresses
	c.createdAt = createdAt
	return c, nil
}

// Validate ensures the customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) FirstName() string {
	return c.firstName
}

func (c *Customer) LastName() string {
	return c.lastName
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// Addresses returns the customer's addresses. The slice is shared with the
// aggregate; callers must not mutate it.
func (c *Customer) Addresses() []*Address {
	return c.addresses
}

// AddAddress attaches a new address to the customer.
func (c *Customer) AddAddress(address *Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	if !address.BelongsTo(c.id) {
		return errs.NewValueIsInvalidErrorWithCause("address",
			errors.New("address does not belong to the customer"))
	}

	c.addresses = append(c.addresses, address)
	return nil
}

// RemoveAddress detaches an owned address. Returns ObjectNotFound when the
// customer does not own an address with the given id.
func (c *Customer) RemoveAddress(addressID kernel.UUID) error {
	for i, address := range c.addresses {
		if address.ID().IsEqual(addressID) {
			c.addresses = append(c.addresses[:i], c.addresses[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("addressId", addressID.String())
}

// UpdateContact edits the customer's name and phone. Email changes go through
// ChangeEmail so uniqueness can be re-checked by the caller.
func (c *Customer) UpdateContact(firstName, lastName, phone string) error {
	if err := errors.Join(
		c.setName(firstName, lastName),
		c.setPhone(phone),
	); err != nil {
		return err
	}
	return nil
}

// ChangeEmail sets a new email address. The caller is responsible for
// checking uniqueness against the entity set before committing.
func (c *Customer) ChangeEmail(email string) error {
	return c.setEmail(email)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	c.firstName = firstName
	c.lastName = lastName
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email",
			errors.New("email must contain @"))
	}
	c.email = strings.ToLower(email)
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
