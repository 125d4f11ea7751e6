package pricing

import (
	"fmt"
	"strings"

	"castlecare/internal/pkg/errs"
)

// BillingPeriod describes how a plan's price recurs.
type BillingPeriod string

const (
	OneTime     BillingPeriod = "ONE_TIME"
	Month       BillingPeriod = "MONTH"
	ThreeMonths BillingPeriod = "THREE_MONTHS"
)

// BillingPeriodFromString parses a billing period from external input,
// case-insensitively.
func BillingPeriodFromString(s string) (BillingPeriod, error) {
	bp := BillingPeriod(strings.ToUpper(strings.TrimSpace(s)))
	if err := bp.Validate(); err != nil {
		return "", err
	}
	return bp, nil
}

// Validate checks that the billing period is one of the supported values.
func (b BillingPeriod) Validate() error {
	switch b {
	case OneTime, Month, ThreeMonths:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("billingPeriod",
			fmt.Errorf("%q is not a supported billing period", string(b)))
	}
}

func (b BillingPeriod) String() string {
	return string(b)
}
