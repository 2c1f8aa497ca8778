package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	mu     sync.Mutex
	sweeps int
	today  time.Time
	now    types.TimeString
}

func (f *fakeBookingRepo) MarkCompleted(_ context.Context, today time.Time, nowTime types.TimeString) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sweeps++
	f.today = today
	f.now = nowTime
	return 2, nil
}

func TestSweeper_SweepsImmediatelyAndStops(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Dhaka")
	require.NoError(t, err)

	repo := &fakeBookingRepo{}
	sweeper := NewCompletionSweeper(repo, domain.SchedulePolicy{
		SlotMinutes: 30,
		WindowOpen:  "08:00",
		WindowClose: "20:00",
		HorizonDays: 7,
		Location:    loc,
	}, time.Hour, nopLogger{})
	// 10:45 UTC is 16:45 in Dhaka.
	sweeper.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 10, 10, 45, 0, 0, time.UTC)}

	stopCh := make(chan struct{})
	done := make(chan struct{})
	go func() {
		sweeper.Run(stopCh)
		close(done)
	}()

	// The initial sweep happens before the first tick.
	assert.Eventually(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		return repo.sweeps == 1
	}, time.Second, 10*time.Millisecond)

	close(stopCh)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), repo.today)
	assert.Equal(t, types.TimeString("16:45"), repo.now)
}
