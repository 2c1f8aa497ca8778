package delete_room

import "context"

type RoomService interface {
	Delete(ctx context.Context, roomID, requesterID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
