// Package errs provides standardized error types for the fulfillment
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// The reporting pipeline relies on ObjectNotFoundError to distinguish a
// hard "order does not exist" failure from the soft absence of stage
// data, which is never represented as an error at all.
package errs
