// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the home-services system. It implements
// business rules that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - EligibilityValidator: A domain service checking a pricing plan's size
//     bracket against the measured size of the customer's property
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
