package models

import (
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// CreateRoomRequest describes a new room. Admin only.
type CreateRoomRequest struct {
	RequesterID    int64
	RoomNumber     string
	Purpose        string
	Capacity       int
	Location       string
	OperatingOpen  types.TimeString
	OperatingClose types.TimeString
	Status         *string // defaults to available
	Description    *string
}

// UpdateRoomRequest carries partial room changes. Nil fields keep their
// current value. Admin only.
type UpdateRoomRequest struct {
	RequesterID    int64
	RoomID         int64
	RoomNumber     *string
	Purpose        *string
	Capacity       *int
	Location       *string
	OperatingOpen  *types.TimeString
	OperatingClose *types.TimeString
	Status         *string
	Description    *string
}

// ListRoomsRequest narrows and paginates the catalog listing.
type ListRoomsRequest struct {
	Status      *string
	Purpose     *string
	MinCapacity *int
	Limit       uint64
	Offset      uint64
}

// RoomResponse is a room as exposed by the service layer.
type RoomResponse struct {
	ID             int64
	RoomNumber     string
	Purpose        string
	Capacity       int
	Location       string
	OperatingOpen  types.TimeString
	OperatingClose types.TimeString
	Status         string
	Description    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RoomListResponse is an ordered room collection.
type RoomListResponse struct {
	Rooms []*RoomResponse
	Total int
}

// FromDomainRoom converts a domain room into a service response.
func FromDomainRoom(r *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:             r.ID,
		RoomNumber:     r.RoomNumber,
		Purpose:        r.Purpose,
		Capacity:       r.Capacity,
		Location:       r.Location,
		OperatingOpen:  r.OperatingOpen,
		OperatingClose: r.OperatingClose,
		Status:         string(r.Status),
		Description:    r.Description,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// FromDomainRoomList converts a domain room slice.
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	out := make([]*RoomResponse, len(rooms))
	for i, r := range rooms {
		out[i] = FromDomainRoom(r)
	}
	return &RoomListResponse{
		Rooms: out,
		Total: len(out),
	}
}
