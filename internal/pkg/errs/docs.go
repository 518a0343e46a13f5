// Package errs provides the standardized error taxonomy for the delivery
// backend. Every rejected precondition maps to a distinct, matchable kind so
// callers can render an actionable message instead of a generic failure.
//
// Each kind follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrAlreadyAssigned)
//   - A struct type carrying the error details
//   - Constructor functions, with and without an underlying cause
//   - Error() for formatting and Unwrap() so errors.Is matches the sentinel
//
// Validation kinds (value required/invalid, invalid status, invalid
// transition, invalid operation) are never transient and are not retried.
// StorageFailure wraps persistence-layer causes; the HTTP boundary surfaces
// it generically unless the service runs in development mode.
package errs
