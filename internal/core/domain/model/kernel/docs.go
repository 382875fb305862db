// Package kernel contains the shared value objects of the domain model:
// UUID identifiers, fixed-point Money amounts, and GeoPoint coordinates.
//
// All kernel types are immutable value objects created through constructor
// functions. Zero values are invalid and fail Validate, which repositories use
// when reconstructing aggregates from persistence.
package kernel
