package search_rooms

import (
	"context"
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
)

// BookingRepository is the booking storage surface this use case needs
type BookingRepository interface {
	GetScheduledByRoomsAndDate(ctx context.Context, roomIDs []int64, date time.Time) ([]*domain.Booking, error)
}

// RoomRepository is the room storage surface this use case needs
type RoomRepository interface {
	List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error)
}

// TimeProvider supplies the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface this use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source
type RealTimeProvider struct{}

// Now returns the current wall-clock time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
