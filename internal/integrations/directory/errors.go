package directory

import "errors"

var (
	// ErrUserNotFound is returned when the directory has no such user
	ErrUserNotFound = errors.New("directory client: user not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("directory client: internal error")

	// ErrInvalidResponse is returned when the directory answers with an
	// unexpected status or body
	ErrInvalidResponse = errors.New("directory client: invalid response")

	// ErrServiceDegraded is returned when the directory is unreachable and
	// the caller should fall back to non-privileged behaviour
	ErrServiceDegraded = errors.New("directory service unavailable: graceful degradation applied")
)
