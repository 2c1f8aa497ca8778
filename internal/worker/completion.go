// Package worker holds background jobs.
package worker

import (
	"context"
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// BookingRepository is the storage surface the sweeper needs
type BookingRepository interface {
	MarkCompleted(ctx context.Context, today time.Time, nowTime types.TimeString) (int64, error)
}

// TimeProvider supplies the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the sweeper needs
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source
type RealTimeProvider struct{}

// Now returns the current wall-clock time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// CompletionSweeper periodically moves scheduled bookings whose end time
// has passed to the completed status, so past bookings stop occupying
// grid slots in availability views and history shows them as held.
type CompletionSweeper struct {
	bookingRepo  BookingRepository
	policy       domain.SchedulePolicy
	interval     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewCompletionSweeper creates the sweeper.
func NewCompletionSweeper(
	bookingRepo BookingRepository,
	policy domain.SchedulePolicy,
	interval time.Duration,
	logger Logger,
) *CompletionSweeper {
	return &CompletionSweeper{
		bookingRepo:  bookingRepo,
		policy:       policy,
		interval:     interval,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Run sweeps on the configured interval until stopCh closes. One sweep
// runs immediately on start so a restarted service catches up.
func (s *CompletionSweeper) Run(stopCh <-chan struct{}) {
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-stopCh:
			s.logger.Info("CompletionSweeper: stopped")
			return
		}
	}
}

func (s *CompletionSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	local := s.timeProvider.Now().In(s.policy.Location)
	today := s.policy.Today(local)
	nowTime := types.NewTimeString(local)

	completed, err := s.bookingRepo.MarkCompleted(ctx, today, nowTime)
	if err != nil {
		s.logger.Error("CompletionSweeper: sweep failed: %v", err)
		return
	}

	if completed > 0 {
		s.logger.Info("CompletionSweeper: marked %d bookings completed", completed)
	}
}
