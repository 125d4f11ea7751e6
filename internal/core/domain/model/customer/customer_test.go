package customer_test

import (
	"testing"

	"castlecare/internal/core/domain/model/customer"
	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Ada", "Lovelace", "ada@example.com", "555-0100")
	require.NoError(t, err)
	return c
}

func newAddress(t *testing.T, customerID kernel.UUID) *customer.Address {
	t.Helper()
	a, err := customer.NewAddress(kernel.NewUUID(), customerID, "12 Oak St", "Springfield", "IL", "62701")
	require.NoError(t, err)
	return a
}

func TestNewCustomer(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c := newCustomer(t)

		assert.Equal(t, "Ada", c.FirstName())
		assert.Equal(t, "ada@example.com", c.Email())
		assert.Empty(t, c.Addresses())
		assert.False(t, c.CreatedAt().IsZero())
	})

	t.Run("email_is_normalized", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Ada", "Lovelace", "Ada@Example.COM", "555-0100")
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", c.Email())
	})

	t.Run("malformed_email_rejected", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "Ada", "Lovelace", "not-an-email", "555-0100")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing_fields_rejected", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "", "Lovelace", "ada@example.com", "555-0100")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCustomer_AddAddress(t *testing.T) {
	t.Run("owned_address", func(t *testing.T) {
		c := newCustomer(t)
		a := newAddress(t, c.ID())

		require.NoError(t, c.AddAddress(a))
		assert.Len(t, c.Addresses(), 1)
	})

	t.Run("foreign_address_rejected", func(t *testing.T) {
		c := newCustomer(t)
		a := newAddress(t, kernel.NewUUID())

		err := c.AddAddress(a)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Empty(t, c.Addresses())
	})
}

func TestCustomer_RemoveAddress(t *testing.T) {
	c := newCustomer(t)
	a := newAddress(t, c.ID())
	require.NoError(t, c.AddAddress(a))

	t.Run("unknown_address", func(t *testing.T) {
		err := c.RemoveAddress(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("owned_address", func(t *testing.T) {
		require.NoError(t, c.RemoveAddress(a.ID()))
		assert.Empty(t, c.Addresses())
	})
}

func TestRestoreCustomer_RejectsForeignAddresses(t *testing.T) {
	c := newCustomer(t)
	foreign := newAddress(t, kernel.NewUUID())

	_, err := customer.RestoreCustomer(
		c.ID(), c.FirstName(), c.LastName(), c.Email(), c.Phone(),
		[]*customer.Address{foreign}, c.CreatedAt(),
	)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAddress_BelongsTo(t *testing.T) {
	ownerID := kernel.NewUUID()
	a := newAddress(t, ownerID)

	assert.True(t, a.BelongsTo(ownerID))
	assert.False(t, a.BelongsTo(kernel.NewUUID()))
}

func TestCustomer_Validate(t *testing.T) {
	var zero customer.Customer
	require.ErrorIs(t, zero.Validate(), customer.ErrCustomerIsNotConstructed)
}
