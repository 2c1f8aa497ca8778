package rooms

import "errors"

var (
	// ErrInvalidInput is returned for malformed request fields
	ErrInvalidInput = errors.New("service/rooms: invalid input data")

	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("service/rooms: room not found")

	// ErrRoomNumberTaken is returned when the room number is already used
	ErrRoomNumberTaken = errors.New("service/rooms: room number already taken")

	// ErrAccessDenied is returned when the requester is not an administrator
	ErrAccessDenied = errors.New("service/rooms: access denied")

	// ErrRoomHasBookings is returned when a destructive change would
	// orphan scheduled bookings
	ErrRoomHasBookings = errors.New("service/rooms: room has scheduled bookings")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("service/rooms: internal error")
)
