// Package errs provides standardized error types for the order-management
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value falls outside its bounds
//   - ObjectNotFoundError: for when an object cannot be found
//   - ConflictError: for unique-constraint violations (duplicate email)
//   - UnauthenticatedError: for callers whose identity cannot be established
//   - ForbiddenError: for authenticated callers acting on objects they do not own
//   - InvalidTransitionError: for illegal order status changes
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classification works
//
// The HTTP adapter relies on errors.Is against the sentinels to translate
// application errors to response status codes; everything that does not match
// a sentinel is treated as an internal error and logged with full context.
package errs
