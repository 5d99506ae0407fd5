/*
errors.go - Centralized error types for the expense engine

PURPOSE:
  All sentinel errors in one place for consistency and discoverability.
  Callers match with errors.Is(); the presentation layer translates them
  into user-facing messages.

ERROR CATEGORIES:
  1. Validation errors - Rejected input (non-positive amount, bad date)
  2. Lookup errors - Missing records
  3. Store errors - Persistence failures

SEE ALSO:
  - repository.go: Returns these errors
  - api/handlers.go: Maps these errors to HTTP statuses
*/
package expense

import "errors"

var (
	// ErrNonPositiveAmount is returned when an insert carries amount <= 0.
	// The insert is refused and nothing is written.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrNotFound is returned when a record id does not exist.
	ErrNotFound = errors.New("expense not found")

	// ErrBadDate is returned when a date string is not a valid YYYY-MM-DD
	// calendar date. The collection is never modified on a parse failure.
	ErrBadDate = errors.New("invalid date")

	// ErrStoreUnavailable is returned when the backing store cannot be
	// written. The in-memory change is rolled back before this surfaces, so
	// a failed insert/delete leaves the collection untouched.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrNonPositiveAmount) ||
		errors.Is(err, ErrBadDate) ||
		errors.Is(err, ErrNotFound)
}
