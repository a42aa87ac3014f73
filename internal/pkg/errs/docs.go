// Package errs provides standardized error types for the order workflow service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is present but invalid
//   - ObjectNotFoundError: For when an order (or any other object) cannot be found
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works through wrapping
//
// The HTTP adapter maps ErrObjectNotFound to 404 and ErrValueIsInvalid /
// ErrValueIsRequired to 400.
package errs
