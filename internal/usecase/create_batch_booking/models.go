package create_batch_booking

import (
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// Request is a multi-slot booking: one room, one date, a set of slot
// starts (not necessarily contiguous) sharing purpose and notes.
type Request struct {
	UserID    int64
	RoomID    int64
	Date      time.Time // date only, no time component
	SlotTimes []types.TimeString
	Purpose   string
	Notes     *string

	// RequestToken is an optional client-supplied idempotency key (UUID),
	// stored on the first booking of the batch.
	RequestToken *string
}

// BookedSlot is one committed slot of the batch.
type BookedSlot struct {
	BookingID int64
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Response is the committed batch. Slots follow the chronological order
// of the deduplicated request.
type Response struct {
	RoomID      int64
	UserID      int64
	BookingDate time.Time
	Slots       []BookedSlot
	Purpose     string
	Status      string
	CreatedAt   time.Time
}
