package get_week_schedule

import "github.com/CSE-4113-IP-Lab/booking-service/internal/domain"

// Request identifies the room to aggregate.
type Request struct {
	RoomID int64
}

// Response is the rolling weekly view, day offsets 0..6 from today.
type Response struct {
	Schedule domain.WeeklySchedule
}
