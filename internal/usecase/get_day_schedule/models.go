package get_day_schedule

import (
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
)

// Request identifies a room and a calendar date.
type Request struct {
	RoomID int64
	Date   time.Time // date only, no time component
}

// Response is the room's slot availability for the requested date.
type Response struct {
	RoomID     int64
	RoomNumber string
	Schedule   domain.DaySchedule
}
