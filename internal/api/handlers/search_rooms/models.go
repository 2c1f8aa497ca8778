package search_rooms

import (
	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	searchRooms "github.com/CSE-4113-IP-Lab/booking-service/internal/usecase/search_rooms"
)

// FoundRoomResponse is one matching room.
type FoundRoomResponse struct {
	ID          int64   `json:"id"`
	RoomNumber  string  `json:"roomNumber"`
	Purpose     string  `json:"purpose"`
	Capacity    int     `json:"capacity"`
	Location    string  `json:"location"`
	Description *string `json:"description,omitempty"`
}

// SearchRoomsResponse HTTP response model
type SearchRoomsResponse struct {
	Date      string              `json:"date"`
	StartTime string              `json:"startTime"`
	EndTime   string              `json:"endTime"`
	Rooms     []FoundRoomResponse `json:"rooms"`
	Total     int                 `json:"total"`
}

// FromUseCaseResponse converts the use case result into the HTTP model.
func FromUseCaseResponse(resp *searchRooms.Response) *SearchRoomsResponse {
	rooms := make([]FoundRoomResponse, len(resp.Rooms))
	for i, room := range resp.Rooms {
		rooms[i] = FoundRoomResponse{
			ID:          room.ID,
			RoomNumber:  room.RoomNumber,
			Purpose:     room.Purpose,
			Capacity:    room.Capacity,
			Location:    room.Location,
			Description: room.Description,
		}
	}
	return &SearchRoomsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: string(resp.StartTime),
		EndTime:   string(resp.EndTime),
		Rooms:     rooms,
		Total:     len(rooms),
	}
}
