package get_room

import (
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/service/rooms/models"
)

// RoomResponse HTTP response model
type RoomResponse struct {
	ID             int64   `json:"id"`
	RoomNumber     string  `json:"roomNumber"`
	Purpose        string  `json:"purpose"`
	Capacity       int     `json:"capacity"`
	Location       string  `json:"location"`
	OperatingOpen  string  `json:"operatingOpen"`
	OperatingClose string  `json:"operatingClose"`
	Status         string  `json:"status"`
	Description    *string `json:"description,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// FromServiceResponse converts the service result into the HTTP model.
func FromServiceResponse(r *models.RoomResponse) *RoomResponse {
	return &RoomResponse{
		ID:             r.ID,
		RoomNumber:     r.RoomNumber,
		Purpose:        r.Purpose,
		Capacity:       r.Capacity,
		Location:       r.Location,
		OperatingOpen:  string(r.OperatingOpen),
		OperatingClose: string(r.OperatingClose),
		Status:         r.Status,
		Description:    r.Description,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      r.UpdatedAt.Format(time.RFC3339),
	}
}
