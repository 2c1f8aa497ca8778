package bookings

import (
	"context"
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
)

// BookingRepository is the booking storage surface the service needs
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUser(ctx context.Context, filter domain.UserBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64) error
}

// DirectoryClient checks roles against the departmental directory
type DirectoryClient interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// TransactionManager guards read-modify-write sequences
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
