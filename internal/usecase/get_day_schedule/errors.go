package get_day_schedule

import "errors"

var (
	// ErrInvalidInput is returned for malformed request fields
	ErrInvalidInput = errors.New("get_day_schedule: invalid input data")

	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("get_day_schedule: room not found")

	// ErrDateOutOfRange is returned when the date lies outside the
	// visible horizon (before today or at/after today + horizon)
	ErrDateOutOfRange = errors.New("get_day_schedule: date is outside the visible horizon")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("get_day_schedule: internal error")
)
