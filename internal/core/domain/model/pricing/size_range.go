package pricing

// Size-range bracket literals recognized by the eligibility check.
// A plan's SizeRange is free text; only these literals gate admission.
// Any other value is treated as unrecognized and does not reject orders.
const (
	// LAWNCARE brackets, gating on parsed lot acreage.
	SizeRangeLawnSmall  = "0-0.5 acres"
	SizeRangeLawnMedium = "0.6-1 acre"
	SizeRangeLawnLarge  = "1+ acres"

	// LIGHTING brackets, gating on living area in square feet.
	SizeRangeLightingSmall  = "Up to 1300 sq ft"
	SizeRangeLightingMedium = "1350-2449 sq ft"
	SizeRangeLightingLarge  = "2450+ sq ft"
)
