package search_rooms

import "errors"

var (
	// ErrInvalidInput is returned for malformed request fields
	ErrInvalidInput = errors.New("search_rooms: invalid input data")

	// ErrDateOutOfRange is returned when the date lies outside the
	// visible horizon
	ErrDateOutOfRange = errors.New("search_rooms: date is outside the visible horizon")

	// ErrInvalidTimeRange is returned when end is not after start
	ErrInvalidTimeRange = errors.New("search_rooms: end time must be after start time")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("search_rooms: internal error")
)
