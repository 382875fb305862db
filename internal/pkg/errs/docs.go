// Package errs provides standardized error types for the food delivery
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the codebase.
//
// The package defines one sentinel error per failure class and a struct type
// carrying the failure details:
//   - ObjectNotFoundError: a referenced entity does not exist
//   - BusinessRuleViolationError: an operation would violate a domain invariant
//   - ConflictError: the request conflicts with current state
//   - ValueIsInvalidError / ValueIsRequiredError / ValueIsOutOfRangeError:
//     malformed input values
//   - VersionConflictError: an optimistic-concurrency check failed
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify failures with errors.Is against the sentinels, which is how
// the HTTP adapter maps domain errors to status codes.
package errs
