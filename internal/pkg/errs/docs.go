// Package errs provides the typed errors shared by the order management service.
//
// Each error type follows the same shape:
//   - a sentinel variable (ErrObjectNotFound, ErrValueIsInvalid, ...)
//   - a struct carrying the details of the failure
//   - constructors with and without a cause
//   - Unwrap returning the sentinel, so errors.Is works across layers
//
// Adapters translate storage failures into these errors (a missing row becomes
// an ObjectNotFoundError, a stale optimistic version a VersionIsInvalidError)
// and the HTTP layer maps the sentinels onto status codes.
package errs
