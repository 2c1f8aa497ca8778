package models

import (
	"fmt"
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// GetUserBookingsRequest asks for one user's booking history, optionally
// narrowed to a single status.
type GetUserBookingsRequest struct {
	UserID      int64
	RequesterID int64
	Status      *string
}

// CancelBookingRequest cancels a single booking on behalf of the requester.
type CancelBookingRequest struct {
	BookingID   int64
	RequesterID int64
}

// BookingResponse is a booking as exposed by the service layer.
type BookingResponse struct {
	ID          int64
	RoomID      int64
	UserID      int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Purpose     string
	Notes       *string
	Status      string
	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BookingListResponse is an ordered booking collection.
type BookingListResponse struct {
	Bookings []*BookingResponse
	Total    int
}

// ToDomainBookingStatus parses a status string into its domain value.
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	for _, valid := range domain.ValidBookingStatuses {
		if domain.BookingStatus(status) == valid {
			return valid, nil
		}
	}
	return "", fmt.Errorf("unknown booking status %q", status)
}

// FromDomainBooking converts a domain booking into a service response.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		RoomID:      b.RoomID,
		UserID:      b.UserID,
		BookingDate: b.BookingDate,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Purpose:     b.Purpose,
		Notes:       b.Notes,
		Status:      string(b.Status),
		CancelledAt: b.CancelledAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList converts a domain booking slice.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: out,
		Total:    len(out),
	}
}
