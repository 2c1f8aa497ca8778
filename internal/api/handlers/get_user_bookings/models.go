package get_user_bookings

import (
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	RoomID      int64   `json:"roomId"`
	UserID      int64   `json:"userId"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Purpose     string  `json:"purpose"`
	Notes       *string `json:"notes,omitempty"`
	Status      string  `json:"status"`
	CancelledAt *string `json:"cancelledAt,omitempty"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromServiceResponse converts the service result into the HTTP model.
func FromServiceResponse(list *models.BookingListResponse) *BookingListResponse {
	out := make([]*BookingResponse, len(list.Bookings))
	for i, b := range list.Bookings {
		resp := &BookingResponse{
			ID:        b.ID,
			RoomID:    b.RoomID,
			UserID:    b.UserID,
			Date:      b.BookingDate.Format(domain.DateFormat),
			StartTime: string(b.StartTime),
			EndTime:   string(b.EndTime),
			Purpose:   b.Purpose,
			Notes:     b.Notes,
			Status:    b.Status,
		}
		if b.CancelledAt != nil {
			formatted := b.CancelledAt.Format(time.RFC3339)
			resp.CancelledAt = &formatted
		}
		out[i] = resp
	}
	return &BookingListResponse{
		Bookings: out,
		Total:    list.Total,
	}
}
