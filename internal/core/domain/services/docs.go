// Package services provides domain services that implement business logic
// spanning multiple aggregates of the food delivery system.
//
// The package includes:
//   - FreightCalculator: tiered delivery pricing from the restaurant-to-client
//     distance
//   - RatingAggregator: derivation of a restaurant's rating from its reviews
//
// Domain services hold no state of their own; they operate on domain model
// values and aggregates following Domain-Driven Design principles.
package services
