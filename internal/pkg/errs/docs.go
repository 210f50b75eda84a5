// Package errs provides the error taxonomy of the warehouse application.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g., ErrInsufficientStock) used for classification
//   - a struct type carrying the details of the failure
//   - constructor functions
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify with errors.Is(err, errs.ErrInsufficientStock) and read the
// details with errors.As(err, &stockErr). All of these errors describe business
// rule violations: they are terminal and must not be retried.
package errs
