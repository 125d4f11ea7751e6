// Package pricing contains the PricingOption aggregate and the service-type
// and billing-period value objects shared by orders and workers.
//
// A pricing option (plan) is a priced service offering scoped by service type,
// billing period and an eligibility size bracket. Orders snapshot a plan's
// price and billing period at creation time, so later plan edits never
// retroactively alter existing orders.
package pricing
