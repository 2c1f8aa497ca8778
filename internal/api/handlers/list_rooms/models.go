package list_rooms

import (
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
}

// RoomListResponse HTTP response model
type RoomListResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
	Total int             `json:"total"`
}

// FromServiceResponse converts the service result into the HTTP model.
func FromServiceResponse(list *models.RoomListResponse) *RoomListResponse {
	out := make([]*RoomResponse, len(list.Rooms))
	for i, r := range list.Rooms {
		out[i] = &RoomResponse{
			ID:             r.ID,
			RoomNumber:     r.RoomNumber,
			Purpose:        r.Purpose,
			Capacity:       r.Capacity,
			Location:       r.Location,
			OperatingOpen:  string(r.OperatingOpen),
			OperatingClose: string(r.OperatingClose),
			Status:         r.Status,
			Description:    r.Description,
		}
	}
	return &RoomListResponse{
		Rooms: out,
		Total: list.Total,
	}
}
