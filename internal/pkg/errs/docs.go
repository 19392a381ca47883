// Package errs provides the standardized error types used throughout the
// marketplace application.
//
// Every business failure maps to one of a small set of kinds:
//   - ObjectNotFoundError: a referenced order/bid/category/area does not exist
//   - ObjectAlreadyExistsError: a uniqueness rule was violated (duplicate active bid)
//   - ActionNotAllowedError: a lifecycle transition from an incompatible state,
//     or an actor without entity-level rights
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     field-level validation failures carrying the violated field
//   - QueryUnsupportedError: a search subtype invoked without an implemented
//     execution strategy
//   - StoreUnavailableError: a store-connectivity failure passed through as-is
//
// Each type follows a consistent pattern: a sentinel error variable, a struct
// with the error details, constructors with and without cause, an Error()
// method, and Unwrap() to the sentinel so callers classify with errors.Is.
// All kinds are recoverable-and-reportable; the core never treats them as
// fatal process errors.
package errs
