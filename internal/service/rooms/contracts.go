package rooms

import (
	"context"
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
)

// RoomRepository is the room storage surface the service needs
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) (*domain.Room, error)
	Delete(ctx context.Context, id int64) error
}

// BookingRepository guards destructive room changes against live bookings
type BookingRepository interface {
	CountScheduledByRoom(ctx context.Context, roomID int64, from time.Time) (int, error)
}

// DirectoryClient checks roles against the departmental directory
type DirectoryClient interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// TimeProvider supplies the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the service needs
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
