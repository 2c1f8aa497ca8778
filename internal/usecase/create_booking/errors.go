package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request fields
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomUnavailable is returned when the room is occupied or under
	// maintenance
	ErrRoomUnavailable = errors.New("create_booking: room is not accepting bookings")

	// ErrDateInPast is returned when the booking date is before today
	ErrDateInPast = errors.New("create_booking: booking date is in the past")

	// ErrDateBeyondHorizon is returned when the booking date falls outside
	// the rolling booking horizon
	ErrDateBeyondHorizon = errors.New("create_booking: booking date is beyond the booking horizon")

	// ErrOutsideBookingWindow is returned when the time range leaves the
	// campus-wide bookable window
	ErrOutsideBookingWindow = errors.New("create_booking: time is outside the bookable window")

	// ErrInvalidTimeRange is returned when end is not after start
	ErrInvalidTimeRange = errors.New("create_booking: end time must be after start time")

	// ErrNotSlotAligned is returned when start or end is not on a slot
	// boundary
	ErrNotSlotAligned = errors.New("create_booking: time is not aligned to the slot grid")

	// ErrOutsideOperatingHours is returned when the range leaves the
	// room's own operating window
	ErrOutsideOperatingHours = errors.New("create_booking: time is outside the room's operating hours")

	// ErrTimeConflict is returned when the range overlaps an existing
	// scheduled booking
	ErrTimeConflict = errors.New("create_booking: time range conflicts with an existing booking")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("create_booking: internal error")
)
