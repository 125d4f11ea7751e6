package services

import (
	"log/slog"
	"strconv"
	"strings"

	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/pkg/errs"
)

// EligibilityValidator is a domain service that decides whether a property may
// book a given pricing plan, based on the plan's declared size bracket and the
// measured size of the property.
//
// Business rules:
//   - LAUNDRY plans have no size gating and always pass.
//   - LIGHTING plans gate on living area (sq ft) against one of three fixed
//     textual brackets.
//   - LAWNCARE plans gate on lot size, parsed as acreage from a free-text
//     string such as "0.25 acres".
//   - A size-range string outside the known bracket literals is logged and
//     allowed through rather than rejected, so new brackets can be introduced
//     on plans before the validator learns about them.
//   - A service type outside the supported set is always a hard failure.
//
// Example usage:
//
//	validator := services.NewEligibilityValidator(logger)
//	if err := validator.Validate(plan, livingAreaSqFt, lotSize); err != nil {
//	    // property does not qualify for this plan
//	    return err
//	}
type EligibilityValidator struct {
	logger *slog.Logger
}

// NewEligibilityValidator creates a new EligibilityValidator instance.
//
// Parameters:
//   - logger: Logger used to report unrecognized size-range brackets
//
// Returns:
//   - EligibilityValidator: A new instance ready for eligibility checks
func NewEligibilityValidator(logger *slog.Logger) EligibilityValidator {
	return EligibilityValidator{logger: logger.With("component", "eligibility_validator")}
}

// Validate checks the plan's size bracket against the property's measured size.
//
// Parameters:
//   - plan: The pricing plan whose size bracket gates the booking
//   - livingAreaSqFt: The property's living area in square feet
//   - lotSize: The property's lot size as free text (e.g. "0.25 acres")
//
// Returns:
//   - error: nil when the property qualifies; ValueIsOutOfRangeError when the
//     measured size falls outside the plan's bracket; ValueIsInvalidError when
//     the lot-size string cannot be parsed or the service type is unsupported
func (v EligibilityValidator) Validate(plan *pricing.PricingOption, livingAreaSqFt int, lotSize string) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	switch plan.ServiceType() {
	case pricing.Lawncare:
		return v.validateLawncare(plan.SizeRange(), lotSize)
	case pricing.Lighting:
		return v.validateLighting(plan.SizeRange(), livingAreaSqFt)
	case pricing.Laundry:
		// no size gating for laundry
		return nil
	default:
		return errs.NewValueIsInvalidError("serviceType")
	}
}

func (v EligibilityValidator) validateLawncare(sizeRange, lotSize string) error {
	acres, err := parseAcres(lotSize)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("lotSize", err)
	}

	switch sizeRange {
	case pricing.SizeRangeLawnSmall:
		if acres > 0.5 {
			return errs.NewValueIsOutOfRangeError("lotSize", acres, 0.0, 0.5)
		}
	case pricing.SizeRangeLawnMedium:
		if acres < 0.6 || acres > 1.0 {
			return errs.NewValueIsOutOfRangeError("lotSize", acres, 0.6, 1.0)
		}
	case pricing.SizeRangeLawnLarge:
		if acres < 1.0 {
			return errs.NewValueIsOutOfRangeError("lotSize", acres, 1.0, nil)
		}
	default:
		v.logger.Warn("unknown size range for lawncare", "sizeRange", sizeRange)
	}

	return nil
}

func (v EligibilityValidator) validateLighting(sizeRange string, livingAreaSqFt int) error {
	switch sizeRange {
	case pricing.SizeRangeLightingSmall:
		if livingAreaSqFt > 1300 {
			return errs.NewValueIsOutOfRangeError("livingAreaSqFt", livingAreaSqFt, 0, 1300)
		}
	case pricing.SizeRangeLightingMedium:
		if livingAreaSqFt < 1350 || livingAreaSqFt > 2449 {
			return errs.NewValueIsOutOfRangeError("livingAreaSqFt", livingAreaSqFt, 1350, 2449)
		}
	case pricing.SizeRangeLightingLarge:
		if livingAreaSqFt < 2450 {
			return errs.NewValueIsOutOfRangeError("livingAreaSqFt", livingAreaSqFt, 2450, nil)
		}
	default:
		v.logger.Warn("unknown size range for lighting", "sizeRange", sizeRange)
	}

	return nil
}

// parseAcres extracts a floating-point acreage from a free-text lot size.
// The string may carry an "acres" or "acre" unit token, or be a bare number.
func parseAcres(lotSize string) (float64, error) {
	s := lotSize
	switch {
	case strings.Contains(s, "acres"):
		s = strings.ReplaceAll(s, "acres", "")
	case strings.Contains(s, "acre"):
		s = strings.ReplaceAll(s, "acre", "")
	}

	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
