package create_booking

import (
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// Request is a prospective booking before validation.
type Request struct {
	UserID    int64
	RoomID    int64
	Date      time.Time // date only, no time component
	StartTime types.TimeString
	EndTime   types.TimeString
	Purpose   string
	Notes     *string

	// RequestToken is an optional client-supplied idempotency key (UUID).
	// A retried request carrying the same token is rejected as a conflict
	// instead of producing a duplicate booking.
	RequestToken *string
}

// Response is the created booking.
type Response struct {
	ID          int64
	RoomID      int64
	UserID      int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Purpose     string
	Notes       *string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
