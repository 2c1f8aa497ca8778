package get_room_schedule

import (
	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	getDaySchedule "github.com/CSE-4113-IP-Lab/booking-service/internal/usecase/get_day_schedule"
)

// SlotResponse is one grid slot.
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
	BookingID *int64 `json:"bookingId,omitempty"`
}

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	RoomID     int64          `json:"roomId"`
	RoomNumber string         `json:"roomNumber"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case result into the HTTP model.
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	slots := make([]SlotResponse, len(resp.Schedule.Slots))
	for i, slot := range resp.Schedule.Slots {
		slots[i] = SlotResponse{
			StartTime: string(slot.StartTime),
			EndTime:   string(slot.EndTime),
			Available: slot.Available,
			BookingID: slot.BookingID,
		}
	}
	return &DayScheduleResponse{
		RoomID:     resp.RoomID,
		RoomNumber: resp.RoomNumber,
		Date:       resp.Schedule.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}
