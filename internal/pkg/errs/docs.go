// Package errs provides the standardized error types used across the
// application. Every domain failure is expressed through one of these types
// so the HTTP boundary can classify it with errors.Is and map it to a status
// code without inspecting message text.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) as unwrap target
//   - a struct carrying the failing parameter and an optional cause
//   - constructors with and without cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// The taxonomy maps onto the API surface as follows: ValueIsRequired and
// ValueIsInvalid become 400, ObjectNotFound becomes 404, Conflict becomes 409,
// and anything else is an internal fault reported as 500.
package errs
