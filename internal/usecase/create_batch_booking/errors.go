package create_batch_booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

var (
	// ErrInvalidInput is returned for malformed request fields
	ErrInvalidInput = errors.New("create_batch_booking: invalid input data")

	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("create_batch_booking: room not found")

	// ErrRoomUnavailable is returned when the room is occupied or under
	// maintenance
	ErrRoomUnavailable = errors.New("create_batch_booking: room is not accepting bookings")

	// ErrDateInPast is returned when the booking date is before today
	ErrDateInPast = errors.New("create_batch_booking: booking date is in the past")

	// ErrDateBeyondHorizon is returned when the booking date falls outside
	// the rolling booking horizon
	ErrDateBeyondHorizon = errors.New("create_batch_booking: booking date is beyond the booking horizon")

	// ErrOutsideBookingWindow is returned when a slot leaves the
	// campus-wide bookable window
	ErrOutsideBookingWindow = errors.New("create_batch_booking: slot is outside the bookable window")

	// ErrNotSlotAligned is returned when a slot start is not on a slot
	// boundary
	ErrNotSlotAligned = errors.New("create_batch_booking: slot is not aligned to the slot grid")

	// ErrOutsideOperatingHours is returned when a slot leaves the room's
	// own operating window
	ErrOutsideOperatingHours = errors.New("create_batch_booking: slot is outside the room's operating hours")

	// ErrTooManySlots is returned when the batch exceeds the per-request
	// slot cap
	ErrTooManySlots = errors.New("create_batch_booking: too many slots in one request")

	// ErrPartialFailure is returned when at least one requested slot is
	// already taken. Nothing is committed; the wrapping
	// SlotsNotAvailableError names the losers.
	ErrPartialFailure = errors.New("create_batch_booking: some requested slots are not available")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("create_batch_booking: internal error")
)

// SlotsNotAvailableError enumerates the per-slot outcome of a failed
// batch so the caller can re-pick only the slots that collided.
type SlotsNotAvailableError struct {
	Conflicting []types.TimeString
	Free        []types.TimeString
}

func (e *SlotsNotAvailableError) Error() string {
	taken := make([]string, len(e.Conflicting))
	for i, s := range e.Conflicting {
		taken[i] = string(s)
	}
	return fmt.Sprintf("%v: %s", ErrPartialFailure, strings.Join(taken, ", "))
}

func (e *SlotsNotAvailableError) Unwrap() error {
	return ErrPartialFailure
}
