package get_week_schedule

import "errors"

var (
	// ErrInvalidInput is returned for malformed request fields
	ErrInvalidInput = errors.New("get_week_schedule: invalid input data")

	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("get_week_schedule: room not found")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("get_week_schedule: internal error")
)
