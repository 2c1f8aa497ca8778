package get_week_schedule

import (
	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	getWeekSchedule "github.com/CSE-4113-IP-Lab/booking-service/internal/usecase/get_week_schedule"
)

// SlotResponse is one grid slot.
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
	BookingID *int64 `json:"bookingId,omitempty"`
}

// DayResponse is one day of the weekly view.
type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// WeekScheduleResponse HTTP response model
type WeekScheduleResponse struct {
	RoomID     int64         `json:"roomId"`
	RoomNumber string        `json:"roomNumber"`
	Days       []DayResponse `json:"days"`
}

// FromUseCaseResponse converts the use case result into the HTTP model.
func FromUseCaseResponse(resp *getWeekSchedule.Response) *WeekScheduleResponse {
	days := make([]DayResponse, len(resp.Schedule.Days))
	for i, day := range resp.Schedule.Days {
		slots := make([]SlotResponse, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = SlotResponse{
				StartTime: string(slot.StartTime),
				EndTime:   string(slot.EndTime),
				Available: slot.Available,
				BookingID: slot.BookingID,
			}
		}
		days[i] = DayResponse{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: slots,
		}
	}
	return &WeekScheduleResponse{
		RoomID:     resp.Schedule.RoomID,
		RoomNumber: resp.Schedule.RoomNumber,
		Days:       days,
	}
}
