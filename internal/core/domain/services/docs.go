// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the dock yard system. It
// implements business rules that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - RampAllocator: A domain service enforcing ramp-exclusivity across trucks
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
