package search_rooms

import (
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// Request describes the desired time range and optional room filters.
type Request struct {
	Date        time.Time // date only, no time component
	StartTime   types.TimeString
	EndTime     types.TimeString
	Purpose     *string
	MinCapacity *int
}

// FoundRoom is one room free for the whole requested range.
type FoundRoom struct {
	ID          int64
	RoomNumber  string
	Purpose     string
	Capacity    int
	Location    string
	Description *string
}

// Response lists every matching room, ordered by room number.
type Response struct {
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Rooms     []FoundRoom
}
