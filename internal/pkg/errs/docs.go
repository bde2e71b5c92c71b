// Package errs provides standardized error types for the restaurant backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Business-rule failures that carry domain detail (insufficient stock, stale
// status transitions, branch-scope violations) live next to the domain code
// that raises them; this package holds only the generic value/object errors.
package errs
