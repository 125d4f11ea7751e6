package errs_test

import (
	"errors"
	"testing"

	"castlecare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("customerId", "123")

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 42 (cause: connection refused)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats_bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("age", 17, 18, 120)

		assert.Equal(t, 17, err.Value)
		assert.Equal(t, "value is invalid: 17 is age, min value is 18, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes_newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("lotSize", "0.5\nacres", 0, 10)

		assert.Contains(t, err.Error(), "0.5 acres")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("timeSlot")

	assert.Equal(t, "value is required: timeSlot", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestIllegalStateError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewIllegalStateError("worker must be approved to accept orders")

		assert.Equal(t, "illegal state: worker must be approved to accept orders", err.Error())
		assert.Equal(t, errs.ErrIllegalState, err.Unwrap())
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("status is PENDING")
		err := errs.NewIllegalStateErrorWithCause("order must be in progress to add proof", cause)

		assert.Equal(t,
			"illegal state: order must be in progress to add proof (cause: status is PENDING)",
			err.Error())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	cause := errors.New("row version changed")
	err := errs.NewVersionIsInvalidErrorWithCause("order", cause)

	assert.Equal(t, "version is invalid: order (cause: row version changed)", err.Error())
	assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
}

func TestErrorsCanBeClassified(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("workerId", "9"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("serviceType"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("age", 17, 18, 120), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("roles"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewIllegalStateError("not in progress"), errs.ErrIllegalState)
	require.ErrorIs(t, errs.NewVersionIsInvalidError("order"), errs.ErrVersionIsInvalid)
}
