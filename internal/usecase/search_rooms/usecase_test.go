package search_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/ptr"
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

func (f *fakeBookingRepo) GetScheduledByRoomsAndDate(_ context.Context, roomIDs []int64, date time.Time) ([]*domain.Booking, error) {
	ids := make(map[int64]struct{}, len(roomIDs))
	for _, id := range roomIDs {
		ids[id] = struct{}{}
	}
	var out []*domain.Booking
	for _, b := range f.bookings {
		if _, ok := ids[b.RoomID]; ok && b.BookingDate.Equal(date) && b.IsScheduled() {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeRoomRepo struct {
	rooms []*domain.Room
}

// List applies the same filter semantics as the SQL implementation.
func (f *fakeRoomRepo) List(_ context.Context, filter domain.RoomsFilter) ([]*domain.Room, error) {
	var out []*domain.Room
	for _, r := range f.rooms {
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if filter.Purpose != nil && r.Purpose != *filter.Purpose {
			continue
		}
		if filter.MinCapacity != nil && r.Capacity < *filter.MinCapacity {
			continue
		}
		out = append(out, r)
	}
	return out, nil
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
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)

	bookings := &fakeBookingRepo{}
	rooms := &fakeRoomRepo{rooms: []*domain.Room{
		{ID: 1, RoomNumber: "101", Purpose: "lecture", Capacity: 60, OperatingOpen: "08:00", OperatingClose: "20:00", Status: domain.RoomAvailable},
		{ID: 2, RoomNumber: "102", Purpose: "seminar", Capacity: 20, OperatingOpen: "08:00", OperatingClose: "20:00", Status: domain.RoomAvailable},
		{ID: 3, RoomNumber: "103", Purpose: "lab", Capacity: 30, OperatingOpen: "09:00", OperatingClose: "17:00", Status: domain.RoomAvailable},
		{ID: 4, RoomNumber: "104", Purpose: "lecture", Capacity: 80, OperatingOpen: "08:00", OperatingClose: "20:00", Status: domain.RoomMaintenance},
	}}

	uc := NewUseCase(bookings, rooms, policy, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc, bookings, now
}

func searchRequest(date time.Time) *Request {
	return &Request{
		Date:      date,
		StartTime: "10:00",
		EndTime:   "11:00",
	}
}

func TestExecute_ReturnsFreeAvailableRooms(t *testing.T) {
	uc, _, now := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), searchRequest(now))
	require.NoError(t, err)

	// Room 104 is under maintenance and excluded; the rest are free.
	require.Len(t, resp.Rooms, 3)
	assert.Equal(t, "101", resp.Rooms[0].RoomNumber)
	assert.Equal(t, "102", resp.Rooms[1].RoomNumber)
	assert.Equal(t, "103", resp.Rooms[2].RoomNumber)
}

func TestExecute_ExcludesBookedRooms(t *testing.T) {
	uc, repo, now := newTestUseCase(t)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, now.Location())

	repo.bookings = append(repo.bookings, &domain.Booking{
		ID:          1,
		RoomID:      1,
		BookingDate: date,
		StartTime:   "10:30",
		EndTime:     "11:30",
		Status:      domain.StatusScheduled,
	})

	resp, err := uc.Execute(context.Background(), searchRequest(now))
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 2)
	for _, room := range resp.Rooms {
		assert.NotEqual(t, int64(1), room.ID)
	}
}

func TestExecute_AdjacentBookingDoesNotExclude(t *testing.T) {
	uc, repo, now := newTestUseCase(t)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, now.Location())

	repo.bookings = append(repo.bookings, &domain.Booking{
		ID:          1,
		RoomID:      1,
		BookingDate: date,
		StartTime:   "11:00",
		EndTime:     "12:00",
		Status:      domain.StatusScheduled,
	})

	resp, err := uc.Execute(context.Background(), searchRequest(now))
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 3)
}

func TestExecute_RangeOutsideRoomWindowExcludes(t *testing.T) {
	uc, _, now := newTestUseCase(t)

	// Room 103 operates 09:00-17:00, so 08:00-09:00 is off its grid.
	req := searchRequest(now)
	req.StartTime = "08:00"
	req.EndTime = "09:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 2)
	for _, room := range resp.Rooms {
		assert.NotEqual(t, int64(3), room.ID)
	}
}

func TestExecute_Filters(t *testing.T) {
	uc, _, now := newTestUseCase(t)
	ctx := context.Background()

	req := searchRequest(now)
	req.Purpose = ptr.Ptr("lecture")
	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "101", resp.Rooms[0].RoomNumber)

	req = searchRequest(now)
	req.MinCapacity = ptr.Ptr(25)
	resp, err = uc.Execute(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 2)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc, _, now := newTestUseCase(t)
	ctx := context.Background()

	req := searchRequest(now)
	req.EndTime = "10:00"
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	req = searchRequest(now)
	req.StartTime = "25:00"
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, searchRequest(now.AddDate(0, 0, 9)))
	assert.ErrorIs(t, err, ErrDateOutOfRange)
}
