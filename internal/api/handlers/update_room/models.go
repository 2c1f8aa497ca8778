package update_room

import (
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/service/rooms/models"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// UpdateRoomRequest HTTP request model; omitted fields keep their value.
type UpdateRoomRequest struct {
	RoomNumber     *string `json:"roomNumber,omitempty"`
	Purpose        *string `json:"purpose,omitempty"`
	Capacity       *int    `json:"capacity,omitempty"`
	Location       *string `json:"location,omitempty"`
	OperatingOpen  *string `json:"operatingOpen,omitempty"`
	OperatingClose *string `json:"operatingClose,omitempty"`
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
	UpdatedAt      string  `json:"updatedAt"`
}

// ToServiceRequest converts the HTTP request, parsing window times when set.
func (r *UpdateRoomRequest) ToServiceRequest(roomID, requesterID int64) (*models.UpdateRoomRequest, error) {
	req := &models.UpdateRoomRequest{
		RequesterID: requesterID,
		RoomID:      roomID,
		RoomNumber:  r.RoomNumber,
		Purpose:     r.Purpose,
		Capacity:    r.Capacity,
		Location:    r.Location,
		Status:      r.Status,
		Description: r.Description,
	}

	if r.OperatingOpen != nil {
		open, err := types.NewTimeStringFromString(*r.OperatingOpen)
		if err != nil {
			return nil, err
		}
		req.OperatingOpen = &open
	}
	if r.OperatingClose != nil {
		close, err := types.NewTimeStringFromString(*r.OperatingClose)
		if err != nil {
			return nil, err
		}
		req.OperatingClose = &close
	}

	return req, nil
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
		UpdatedAt:      r.UpdatedAt.Format(time.RFC3339),
	}
}
