package pricing_test

import (
	"testing"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOption(t *testing.T) *pricing.PricingOption {
	t.Helper()
	option, err := pricing.NewPricingOption(
		kernel.NewUUID(),
		pricing.Lawncare,
		"Basic Lawn",
		"weekly mow",
		decimal.NewFromFloat(49.99),
		pricing.Month,
		[]string{"mowing", "edging"},
		pricing.SizeRangeLawnSmall,
	)
	require.NoError(t, err)
	return option
}

func TestNewPricingOption(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		option := validOption(t)

		assert.Equal(t, pricing.Lawncare, option.ServiceType())
		assert.Equal(t, "Basic Lawn", option.Name())
		assert.True(t, option.Price().Equal(decimal.NewFromFloat(49.99)))
		assert.Equal(t, pricing.Month, option.BillingPeriod())
		assert.Equal(t, []string{"mowing", "edging"}, option.Features())
		assert.Equal(t, "0-0.5 acres", option.SizeRange())
	})

	t.Run("negative_price_rejected", func(t *testing.T) {
		_, err := pricing.NewPricingOption(
			kernel.NewUUID(), pricing.Laundry, "Wash", "",
			decimal.NewFromInt(-1), pricing.OneTime, nil, "any",
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		_, err := pricing.NewPricingOption(
			kernel.NewUUID(), pricing.Laundry, "", "",
			decimal.NewFromInt(10), pricing.OneTime, nil, "any",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unsupported_service_type_rejected", func(t *testing.T) {
		_, err := pricing.NewPricingOption(
			kernel.NewUUID(), pricing.ServiceType("PLUMBING"), "Pipes", "",
			decimal.NewFromInt(10), pricing.OneTime, nil, "any",
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPricingOption_Update(t *testing.T) {
	option := validOption(t)

	err := option.Update("Premium Lawn", "bi-weekly", decimal.NewFromInt(79), []string{"mowing"}, pricing.SizeRangeLawnLarge)
	require.NoError(t, err)

	assert.Equal(t, "Premium Lawn", option.Name())
	assert.True(t, option.Price().Equal(decimal.NewFromInt(79)))
	assert.Equal(t, pricing.SizeRangeLawnLarge, option.SizeRange())
	// service type and billing period are fixed
	assert.Equal(t, pricing.Lawncare, option.ServiceType())
	assert.Equal(t, pricing.Month, option.BillingPeriod())
}

func TestPricingOption_Validate(t *testing.T) {
	var zero pricing.PricingOption

	require.ErrorIs(t, zero.Validate(), pricing.ErrPricingOptionIsNotConstructed)
	require.NoError(t, validOption(t).Validate())
}

func TestServiceTypeFromString(t *testing.T) {
	st, err := pricing.ServiceTypeFromString("lawncare")
	require.NoError(t, err)
	assert.Equal(t, pricing.Lawncare, st)

	_, err = pricing.ServiceTypeFromString("plumbing")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestBillingPeriodFromString(t *testing.T) {
	bp, err := pricing.BillingPeriodFromString("three_months")
	require.NoError(t, err)
	assert.Equal(t, pricing.ThreeMonths, bp)

	_, err = pricing.BillingPeriodFromString("yearly")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
