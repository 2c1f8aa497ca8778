package domain

// Default scheduling policy values, overridable via config.
const (
	DefaultSlotMinutes = 30
	DefaultWindowOpen  = "08:00"
	DefaultWindowClose = "20:00"
	DefaultHorizonDays = 7
	DefaultTimezone    = "Asia/Dhaka"
)

// Business validation constants
const (
	MaxPurposeLength     = 200
	MaxNotesLength       = 500
	MaxRoomNumberLength  = 20
	MaxLocationLength    = 200
	MaxDescriptionLength = 1000
	MaxBatchSlots        = 16 // upper bound on slots per multi-slot request
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidBookingStatuses enumerates every accepted booking status value.
var ValidBookingStatuses = []BookingStatus{
	StatusScheduled,
	StatusCancelled,
	StatusCompleted,
}

// ValidRoomStatuses enumerates every accepted room status value.
var ValidRoomStatuses = []RoomStatus{
	RoomAvailable,
	RoomOccupied,
	RoomMaintenance,
}
