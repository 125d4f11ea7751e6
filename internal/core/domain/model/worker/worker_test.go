package worker_test

import (
	"testing"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/core/domain/model/worker"
	"castlecare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorker(t *testing.T, roles ...pricing.ServiceType) *worker.Worker {
	t.Helper()
	if len(roles) == 0 {
		roles = []pricing.ServiceType{pricing.Lawncare}
	}
	w, err := worker.NewWorker(
		kernel.NewUUID(), "Sam", "Reed", 25,
		"3 Pine Rd", "Madison", "WI", "53703",
		"555-0101", "sam@example.com", roles,
	)
	require.NoError(t, err)
	return w
}

func TestNewWorker(t *testing.T) {
	t.Run("starts_pending_and_unavailable", func(t *testing.T) {
		w := newWorker(t)

		assert.Equal(t, worker.StatusPending, w.Status())
		assert.False(t, w.Availability())
		assert.Nil(t, w.PayoutAccountID())
	})

	t.Run("underage_rejected", func(t *testing.T) {
		_, err := worker.NewWorker(
			kernel.NewUUID(), "Kid", "Young", 17,
			"3 Pine Rd", "Madison", "WI", "53703",
			"555-0101", "kid@example.com", []pricing.ServiceType{pricing.Laundry},
		)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("empty_roles_rejected", func(t *testing.T) {
		_, err := worker.NewWorker(
			kernel.NewUUID(), "Sam", "Reed", 25,
			"3 Pine Rd", "Madison", "WI", "53703",
			"555-0101", "sam@example.com", nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown_role_rejected", func(t *testing.T) {
		_, err := worker.NewWorker(
			kernel.NewUUID(), "Sam", "Reed", 25,
			"3 Pine Rd", "Madison", "WI", "53703",
			"555-0101", "sam@example.com", []pricing.ServiceType{"PLUMBING"},
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestWorker_SetAvailability(t *testing.T) {
	w := newWorker(t)

	t.Run("pending_worker_cannot_set_availability", func(t *testing.T) {
		err := w.SetAvailability(true)
		require.ErrorIs(t, err, errs.ErrIllegalState)
		assert.False(t, w.Availability())
	})

	t.Run("approved_worker_can_set_availability", func(t *testing.T) {
		w.Approve()
		require.NoError(t, w.SetAvailability(true))
		assert.True(t, w.Availability())
	})
}

func TestWorker_EnsureCanAccept(t *testing.T) {
	t.Run("pending_worker_rejected", func(t *testing.T) {
		w := newWorker(t)
		require.ErrorIs(t, w.EnsureCanAccept(pricing.Lawncare), errs.ErrIllegalState)
	})

	t.Run("unavailable_worker_rejected", func(t *testing.T) {
		w := newWorker(t)
		w.Approve()
		require.ErrorIs(t, w.EnsureCanAccept(pricing.Lawncare), errs.ErrIllegalState)
	})

	t.Run("missing_role_rejected", func(t *testing.T) {
		w := newWorker(t, pricing.Laundry)
		w.Approve()
		require.NoError(t, w.SetAvailability(true))
		require.ErrorIs(t, w.EnsureCanAccept(pricing.Lighting), errs.ErrValueIsInvalid)
	})

	t.Run("qualified_available_approved_worker_accepted", func(t *testing.T) {
		w := newWorker(t, pricing.Laundry, pricing.Lighting)
		w.Approve()
		require.NoError(t, w.SetAvailability(true))
		require.NoError(t, w.EnsureCanAccept(pricing.Lighting))
	})
}

func TestWorker_Roles(t *testing.T) {
	w := newWorker(t, pricing.Lighting, pricing.Lawncare)

	assert.Equal(t, []pricing.ServiceType{pricing.Lawncare, pricing.Lighting}, w.Roles())
	assert.True(t, w.HasRole(pricing.Lawncare))
	assert.False(t, w.HasRole(pricing.Laundry))
}

func TestRestoreWorker(t *testing.T) {
	w := newWorker(t)
	payout := "acct_123"

	restored, err := worker.RestoreWorker(
		w.ID(), w.FirstName(), w.LastName(), w.Age(),
		w.Street(), w.City(), w.State(), w.Zip(),
		w.Phone(), w.Email(), w.Roles(),
		true, worker.StatusApproved, &payout, w.CreatedAt(),
	)
	require.NoError(t, err)
	assert.Equal(t, worker.StatusApproved, restored.Status())
	assert.True(t, restored.Availability())
	assert.Equal(t, "acct_123", *restored.PayoutAccountID())
}
