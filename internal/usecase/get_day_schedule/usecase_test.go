package get_day_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	roomRepo "github.com/CSE-4113-IP-Lab/booking-service/internal/infra/storage/room"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetScheduledByRoomAndDate(_ context.Context, roomID int64, date time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.RoomID == roomID && b.BookingDate.Equal(date) && b.IsScheduled() {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

func newTestUseCase(t *testing.T) (*UseCase, *fakeBookingRepo, time.Time) {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Dhaka")
	require.NoError(t, err)
	policy := domain.SchedulePolicy{
		SlotMinutes: 30,
		WindowOpen:  "08:00",
		WindowClose: "20:00",
		HorizonDays: 7,
		Location:    loc,
	}
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, loc)

	bookings := &fakeBookingRepo{}
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{
		101: {
			ID:             101,
			RoomNumber:     "101",
			OperatingOpen:  "08:00",
			OperatingClose: "20:00",
			Status:         domain.RoomAvailable,
		},
	}}

	uc := NewUseCase(bookings, rooms, policy, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc, bookings, now
}

func TestExecute_EmptyDayIsFullyAvailable(t *testing.T) {
	uc, _, now := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 101, Date: now})
	require.NoError(t, err)

	require.Len(t, resp.Schedule.Slots, 24)
	assert.Equal(t, types.TimeString("08:00"), resp.Schedule.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("20:00"), resp.Schedule.Slots[23].EndTime)
	for _, slot := range resp.Schedule.Slots {
		assert.True(t, slot.Available)
		assert.Nil(t, slot.BookingID)
	}
}

func TestExecute_BookedSlotsAreUnavailable(t *testing.T) {
	uc, repo, now := newTestUseCase(t)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, now.Location())

	repo.bookings = append(repo.bookings, &domain.Booking{
		ID:          42,
		RoomID:      101,
		BookingDate: date,
		StartTime:   "09:00",
		EndTime:     "10:30",
		Status:      domain.StatusScheduled,
	})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 101, Date: now})
	require.NoError(t, err)

	unavailable := 0
	for _, slot := range resp.Schedule.Slots {
		if !slot.Available {
			unavailable++
			require.NotNil(t, slot.BookingID)
			assert.Equal(t, int64(42), *slot.BookingID)
		}
	}
	// 09:00-10:30 spans three 30-minute slots.
	assert.Equal(t, 3, unavailable)
}

func TestExecute_CancelledBookingsDoNotBlock(t *testing.T) {
	uc, repo, now := newTestUseCase(t)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, now.Location())

	repo.bookings = append(repo.bookings, &domain.Booking{
		ID:          43,
		RoomID:      101,
		BookingDate: date,
		StartTime:   "09:00",
		EndTime:     "10:00",
		Status:      domain.StatusCancelled,
	})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 101, Date: now})
	require.NoError(t, err)

	for _, slot := range resp.Schedule.Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_DateOutOfRange(t *testing.T) {
	uc, _, now := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{RoomID: 101, Date: now.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrDateOutOfRange)

	_, err = uc.Execute(ctx, &Request{RoomID: 101, Date: now.AddDate(0, 0, 7)})
	assert.ErrorIs(t, err, ErrDateOutOfRange)

	_, err = uc.Execute(ctx, &Request{RoomID: 101, Date: now.AddDate(0, 0, 6)})
	require.NoError(t, err)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc, _, now := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{RoomID: 999, Date: now})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
