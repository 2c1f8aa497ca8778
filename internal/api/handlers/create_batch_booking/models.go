package create_batch_booking

import (
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	createBatchBooking "github.com/CSE-4113-IP-Lab/booking-service/internal/usecase/create_batch_booking"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// CreateBatchBookingRequest HTTP request model
type CreateBatchBookingRequest struct {
	RoomID       int64    `json:"roomId"`
	Date         string   `json:"date"`      // "2026-03-10"
	SlotTimes    []string `json:"slotTimes"` // ["09:00", "09:30", "14:00"]
	Purpose      string   `json:"purpose"`
	Notes        *string  `json:"notes,omitempty"`
	RequestToken *string  `json:"requestToken,omitempty"`
}

// BookedSlotResponse is one committed slot.
type BookedSlotResponse struct {
	BookingID int64  `json:"bookingId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BatchBookingResponse HTTP response model
type BatchBookingResponse struct {
	RoomID    int64                `json:"roomId"`
	UserID    int64                `json:"userId"`
	Date      string               `json:"date"`
	Slots     []BookedSlotResponse `json:"slots"`
	Purpose   string               `json:"purpose"`
	Status    string               `json:"status"`
	CreatedAt string               `json:"createdAt"`
}

// SlotConflictResponse reports a failed batch: which slots collided and
// which were still free at resolution time.
type SlotConflictResponse struct {
	Error            string   `json:"error"`
	ConflictingSlots []string `json:"conflictingSlots"`
	FreeSlots        []string `json:"freeSlots"`
}

// ToUseCaseRequest converts the HTTP request, parsing date and times.
func (r *CreateBatchBookingRequest) ToUseCaseRequest(userID int64) (*createBatchBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, len(r.SlotTimes))
	for i, raw := range r.SlotTimes {
		slot, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, err
		}
		slots[i] = slot
	}

	return &createBatchBooking.Request{
		UserID:       userID,
		RoomID:       r.RoomID,
		Date:         date,
		SlotTimes:    slots,
		Purpose:      r.Purpose,
		Notes:        r.Notes,
		RequestToken: r.RequestToken,
	}, nil
}

// FromUseCaseResponse converts the use case result into the HTTP model.
func FromUseCaseResponse(resp *createBatchBooking.Response) *BatchBookingResponse {
	slots := make([]BookedSlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = BookedSlotResponse{
			BookingID: slot.BookingID,
			StartTime: string(slot.StartTime),
			EndTime:   string(slot.EndTime),
		}
	}

	return &BatchBookingResponse{
		RoomID:    resp.RoomID,
		UserID:    resp.UserID,
		Date:      resp.BookingDate.Format(domain.DateFormat),
		Slots:     slots,
		Purpose:   resp.Purpose,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}

// FromSlotsError converts the typed conflict error into the HTTP model.
func FromSlotsError(message string, slotsErr *createBatchBooking.SlotsNotAvailableError) *SlotConflictResponse {
	conflicting := make([]string, len(slotsErr.Conflicting))
	for i, s := range slotsErr.Conflicting {
		conflicting[i] = string(s)
	}
	free := make([]string, len(slotsErr.Free))
	for i, s := range slotsErr.Free {
		free[i] = string(s)
	}
	return &SlotConflictResponse{
		Error:            message,
		ConflictingSlots: conflicting,
		FreeSlots:        free,
	}
}
