package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

func TestBookingOverlaps(t *testing.T) {
	b := &Booking{StartTime: "09:00", EndTime: "10:30"}

	tests := []struct {
		name       string
		start, end types.TimeString
		want       bool
	}{
		{name: "identical range", start: "09:00", end: "10:30", want: true},
		{name: "contained range", start: "09:30", end: "10:00", want: true},
		{name: "overlaps start", start: "08:30", end: "09:30", want: true},
		{name: "overlaps end", start: "10:00", end: "11:00", want: true},
		{name: "touches at start", start: "08:00", end: "09:00", want: false},
		{name: "touches at end", start: "10:30", end: "11:30", want: false},
		{name: "disjoint before", start: "07:00", end: "08:00", want: false},
		{name: "disjoint after", start: "11:00", end: "12:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(tt.start, tt.end))
		})
	}
}

func TestBookingLifecycle(t *testing.T) {
	scheduled := &Booking{Status: StatusScheduled}
	assert.True(t, scheduled.IsScheduled())
	assert.True(t, scheduled.CanBeCancelled())

	cancelled := &Booking{Status: StatusCancelled}
	assert.False(t, cancelled.IsScheduled())
	assert.False(t, cancelled.CanBeCancelled())

	completed := &Booking{Status: StatusCompleted}
	assert.False(t, completed.IsScheduled())
	assert.False(t, completed.CanBeCancelled())
}

func TestBookingDurationMinutes(t *testing.T) {
	b := &Booking{StartTime: "09:00", EndTime: "10:30"}
	assert.Equal(t, 90, b.DurationMinutes())
}

func TestSchedulePolicyToday(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Dhaka")
	require.NoError(t, err)

	policy := SchedulePolicy{HorizonDays: 7, Location: loc}

	// 23:30 UTC on March 10 is already March 11 in Dhaka (UTC+6).
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)

	today := policy.Today(now)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, loc), today)

	end := policy.HorizonEnd(now)
	assert.Equal(t, time.Date(2026, 3, 18, 0, 0, 0, 0, loc), end)
}
