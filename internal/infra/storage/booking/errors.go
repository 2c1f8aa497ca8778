package booking

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrTimeConflict is returned when an insert loses the race for an
	// overlapping time range (exclusion constraint, duplicate request
	// token, or serialization failure at commit)
	ErrTimeConflict = errors.New("booking.repository: time range conflicts with an existing booking")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

// Postgres error codes that signal a lost booking race.
const (
	pqUniqueViolation      = "23505"
	pqExclusionViolation   = "23P01"
	pqSerializationFailure = "40001"
)

// IsConcurrencyConflict reports whether err is a commit-time casualty of a
// concurrent booking: the database refused the write rather than
// double-booking, so the caller should re-fetch availability.
func IsConcurrencyConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch string(pqErr.Code) {
	case pqUniqueViolation, pqExclusionViolation, pqSerializationFailure:
		return true
	}
	return false
}
