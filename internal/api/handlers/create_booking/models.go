package create_booking

import (
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	createBooking "github.com/CSE-4113-IP-Lab/booking-service/internal/usecase/create_booking"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID       int64   `json:"roomId"`
	Date         string  `json:"date"`      // "2026-03-10"
	StartTime    string  `json:"startTime"` // "09:00"
	EndTime      string  `json:"endTime"`   // "10:30"
	Purpose      string  `json:"purpose"`
	Notes        *string `json:"notes,omitempty"`
	RequestToken *string `json:"requestToken,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64   `json:"id"`
	RoomID    int64   `json:"roomId"`
	UserID    int64   `json:"userId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Purpose   string  `json:"purpose"`
	Notes     *string `json:"notes,omitempty"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing date and times.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:       userID,
		RoomID:       r.RoomID,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		Purpose:      r.Purpose,
		Notes:        r.Notes,
		RequestToken: r.RequestToken,
	}, nil
}

// FromUseCaseResponse converts the use case result into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		RoomID:    resp.RoomID,
		UserID:    resp.UserID,
		Date:      resp.BookingDate.Format(domain.DateFormat),
		StartTime: string(resp.StartTime),
		EndTime:   string(resp.EndTime),
		Purpose:   resp.Purpose,
		Notes:     resp.Notes,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
