package customer

import (
	"errors"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a service location owned by a customer. It carries a weak
// back-reference to the owning customer id for lookup; lifecycle control
// stays with the Customer aggregate.
type Address struct {
	id         kernel.UUID
	customerID kernel.UUID
	street     string
	city       string
	state      string
	zip        string

	isConstructed bool
}

// NewAddress creates a validated address owned by the given customer.
func NewAddress(id, customerID kernel.UUID, street, city, state, zip string) (*Address, error) {
	address := &Address{
		isConstructed: true,
	}

	if err := errors.Join(
		address.setID(id),
		address.setCustomerID(customerID),
		address.setFields(street, city, state, zip),
	); err != nil {
		return nil, err
	}

	return address, nil
}

// Validate ensures the address was created through NewAddress.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a *Address) ID() kernel.UUID {
	return a.id
}

// CustomerID returns the owning customer's id.
func (a *Address) CustomerID() kernel.UUID {
	return a.customerID
}

func (a *Address) Street() string {
	return a.street
}

func (a *Address) City() string {
	return a.city
}

func (a *Address) State() string {
	return a.state
}

func (a *Address) Zip() string {
	return a.zip
}

// BelongsTo reports whether the address is owned by the given customer.
func (a *Address) BelongsTo(customerID kernel.UUID) bool {
	return a.customerID.IsEqual(customerID)
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	a.customerID = customerID
	return nil
}

func (a *Address) setFields(street, city, state, zip string) error {
	switch {
	case street == "":
		return errs.NewValueIsRequiredError("street")
	case city == "":
		return errs.NewValueIsRequiredError("city")
	case state == "":
		return errs.NewValueIsRequiredError("state")
	case zip == "":
		return errs.NewValueIsRequiredError("zip")
	}

	a.street = street
	a.city = city
	a.state = state
	a.zip = zip
	return nil
}
