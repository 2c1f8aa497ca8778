package get_room

import (
	"context"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/service/rooms/models"
)

type RoomService interface {
	GetByID(ctx context.Context, roomID int64) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
