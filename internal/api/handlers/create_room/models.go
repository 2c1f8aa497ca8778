package create_room

import (
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/service/rooms/models"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// CreateRoomRequest HTTP request model
type CreateRoomRequest struct {
	RoomNumber     string  `json:"roomNumber"`
	Purpose        string  `json:"purpose"`
	Capacity       int     `json:"capacity"`
	Location       string  `json:"location"`
	OperatingOpen  string  `json:"operatingOpen"`  // "08:00"
	OperatingClose string  `json:"operatingClose"` // "20:00"
	Status         *string `json:"status,omitempty"`
	Description    *string `json:"description,omitempty"`
}

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
}

// ToServiceRequest converts the HTTP request, parsing the window times.
func (r *CreateRoomRequest) ToServiceRequest(requesterID int64) (*models.CreateRoomRequest, error) {
	open, err := types.NewTimeStringFromString(r.OperatingOpen)
	if err != nil {
		return nil, err
	}
	close, err := types.NewTimeStringFromString(r.OperatingClose)
	if err != nil {
		return nil, err
	}

	return &models.CreateRoomRequest{
		RequesterID:    requesterID,
		RoomNumber:     r.RoomNumber,
		Purpose:        r.Purpose,
		Capacity:       r.Capacity,
		Location:       r.Location,
		OperatingOpen:  open,
		OperatingClose: close,
		Status:         r.Status,
		Description:    r.Description,
	}, nil
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
	}
}
