package bookings

import "errors"

var (
	// ErrInvalidInput is returned for malformed request fields
	ErrInvalidInput = errors.New("service/bookings: invalid input data")

	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("service/bookings: booking not found")

	// ErrAccessDenied is returned when the requester is neither the
	// booking owner nor an administrator
	ErrAccessDenied = errors.New("service/bookings: access denied")

	// ErrCannotCancel is returned when the booking is already cancelled
	// or completed
	ErrCannotCancel = errors.New("service/bookings: booking cannot be cancelled")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("service/bookings: internal error")
)
