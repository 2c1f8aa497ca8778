package domain

import (
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// RoomStatus represents the administrative status of a room
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// Room represents a bookable physical space in the department.
// OperatingOpen/OperatingClose bound the room's own daily window; the
// campus-wide booking window (SchedulePolicy) is applied on top of it.
type Room struct {
	ID             int64
	RoomNumber     string // unique display label, e.g. "101"
	Purpose        string // category: lecture, seminar, lab, meeting
	Capacity       int
	Location       string
	OperatingOpen  types.TimeString
	OperatingClose types.TimeString
	Status         RoomStatus
	Description    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the room currently accepts bookings.
func (r *Room) IsBookable() bool {
	return r.Status == RoomAvailable
}

// RoomsFilter narrows a room listing query.
type RoomsFilter struct {
	Status      *RoomStatus
	Purpose     *string
	MinCapacity *int
	Limit       uint64
	Offset      uint64
}
