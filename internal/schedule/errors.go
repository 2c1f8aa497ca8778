package schedule

import "errors"

var (
	// ErrInvalidOperatingWindow is returned when a room's operating window
	// is empty, inverted or not representable on the clock grid
	ErrInvalidOperatingWindow = errors.New("schedule: invalid operating window")

	// ErrInvalidSlotSize is returned for a non-positive slot duration
	ErrInvalidSlotSize = errors.New("schedule: slot size must be positive")
)
