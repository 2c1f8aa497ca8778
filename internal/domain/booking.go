package domain

import (
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusScheduled BookingStatus = "scheduled"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a reservation of one room for one contiguous time
// range on one date. The range is half-open: [StartTime, EndTime).
type Booking struct {
	ID          int64
	RoomID      int64
	UserID      int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Purpose     string
	Notes       *string
	Status      BookingStatus

	// RequestToken is the optional client-supplied idempotency key.
	RequestToken *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled returns true while the booking still occupies its slots.
func (b *Booking) IsScheduled() bool {
	return b.Status == StatusScheduled
}

// CanBeCancelled returns true if the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusScheduled
}

// DurationMinutes returns the booked range length in minutes.
func (b *Booking) DurationMinutes() int {
	minutes, err := b.StartTime.MinutesUntil(b.EndTime)
	if err != nil {
		return 0
	}
	return minutes
}

// Overlaps reports whether the booking's time range intersects [start, end).
// Ranges that merely touch at a boundary do not overlap.
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && b.EndTime.IsAfter(start)
}

// UserBookingsFilter narrows a user's booking history query.
type UserBookingsFilter struct {
	UserID int64
	Status *BookingStatus // nil = all statuses
}
