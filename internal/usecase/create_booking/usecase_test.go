package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	roomRepo "github.com/CSE-4113-IP-Lab/booking-service/internal/infra/storage/room"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/ptr"
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

// fakeBookingRepo is an in-memory booking store.
type fakeBookingRepo struct {
	bookings []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.bookings = append(f.bookings, b)
	return b, nil
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

// passthroughTxManager runs the function without a real transaction.
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testPolicy(t *testing.T) domain.SchedulePolicy {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Dhaka")
	require.NoError(t, err)
	return domain.SchedulePolicy{
		SlotMinutes: 30,
		WindowOpen:  "08:00",
		WindowClose: "20:00",
		HorizonDays: 7,
		Location:    loc,
	}
}

func newTestUseCase(t *testing.T) (*UseCase, *fakeBookingRepo, time.Time) {
	t.Helper()
	policy := testPolicy(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, policy.Location)

	bookings := &fakeBookingRepo{}
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{
		101: {
			ID:             101,
			RoomNumber:     "101",
			Purpose:        "lecture",
			Capacity:       30,
			OperatingOpen:  "08:00",
			OperatingClose: "20:00",
			Status:         domain.RoomAvailable,
		},
		102: {
			ID:             102,
			RoomNumber:     "102",
			Purpose:        "seminar",
			Capacity:       15,
			OperatingOpen:  "08:00",
			OperatingClose: "20:00",
			Status:         domain.RoomMaintenance,
		},
	}}

	uc := NewUseCase(bookings, rooms, passthroughTxManager{}, policy, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc, bookings, now
}

func validRequest(date time.Time) *Request {
	return &Request{
		UserID:    1,
		RoomID:    101,
		Date:      date,
		StartTime: "09:00",
		EndTime:   "10:00",
		Purpose:   "Team sync",
	}
}

func TestExecute_AcceptsValidBooking(t *testing.T) {
	uc, _, now := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), validRequest(now))
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, int64(101), resp.RoomID)
	assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("10:00"), resp.EndTime)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc, _, now := newTestUseCase(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{
			name:    "date yesterday",
			mutate:  func(r *Request) { r.Date = now.AddDate(0, 0, -1) },
			wantErr: ErrDateInPast,
		},
		{
			name:    "date at horizon boundary",
			mutate:  func(r *Request) { r.Date = now.AddDate(0, 0, 7) },
			wantErr: ErrDateBeyondHorizon,
		},
		{
			name:    "unaligned start",
			mutate:  func(r *Request) { r.StartTime = "09:15"; r.EndTime = "10:15" },
			wantErr: ErrNotSlotAligned,
		},
		{
			name:    "start before window",
			mutate:  func(r *Request) { r.StartTime = "07:30" },
			wantErr: ErrOutsideBookingWindow,
		},
		{
			name:    "end after window",
			mutate:  func(r *Request) { r.StartTime = "19:30"; r.EndTime = "20:30" },
			wantErr: ErrOutsideBookingWindow,
		},
		{
			name:    "start at window close",
			mutate:  func(r *Request) { r.StartTime = "20:00"; r.EndTime = "20:00" },
			wantErr: ErrOutsideBookingWindow,
		},
		{
			name:    "end before start",
			mutate:  func(r *Request) { r.StartTime = "11:00"; r.EndTime = "10:00" },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "blank purpose",
			mutate:  func(r *Request) { r.Purpose = "   " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing room",
			mutate:  func(r *Request) { r.RoomID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad request token",
			mutate:  func(r *Request) { r.RequestToken = ptr.Ptr("not-a-uuid") },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(now)
			tt.mutate(req)
			_, err := uc.Execute(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_EndAtWindowCloseAccepted(t *testing.T) {
	uc, _, now := newTestUseCase(t)

	req := validRequest(now)
	req.StartTime = "19:30"
	req.EndTime = "20:00"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_RoomChecks(t *testing.T) {
	uc, _, now := newTestUseCase(t)
	ctx := context.Background()

	req := validRequest(now)
	req.RoomID = 999
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	req = validRequest(now)
	req.RoomID = 102 // maintenance
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestExecute_OverlapScenario(t *testing.T) {
	uc, _, now := newTestUseCase(t)
	ctx := context.Background()

	// Room 101, 09:00-10:00 "Lecture" succeeds.
	first := validRequest(now)
	first.Purpose = "Lecture"
	resp, err := uc.Execute(ctx, first)
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)

	// 09:30-10:30 intersects 09:30-10:00 of the existing booking.
	second := validRequest(now)
	second.StartTime = "09:30"
	second.EndTime = "10:30"
	_, err = uc.Execute(ctx, second)
	assert.ErrorIs(t, err, ErrTimeConflict)

	// 10:00-11:00 is exactly adjacent, no overlap.
	third := validRequest(now)
	third.StartTime = "10:00"
	third.EndTime = "11:00"
	_, err = uc.Execute(ctx, third)
	require.NoError(t, err)
}

func TestExecute_DuplicateRequestConflicts(t *testing.T) {
	uc, _, now := newTestUseCase(t)
	ctx := context.Background()

	req := validRequest(now)
	_, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	// An identical retry finds its own booking occupying the range.
	_, err = uc.Execute(ctx, validRequest(now))
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestExecute_PersistsRequestedDateInWesternTimezone(t *testing.T) {
	// Handlers parse the date field as midnight UTC. In a timezone west of
	// UTC that instant is still the previous evening, so the persisted date
	// must come from the date's components, not from zone conversion.
	loc, err := time.LoadLocation("America/New_York")
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
			Purpose:        "lecture",
			Capacity:       30,
			OperatingOpen:  "08:00",
			OperatingClose: "20:00",
			Status:         domain.RoomAvailable,
		},
	}}

	uc := NewUseCase(bookings, rooms, passthroughTxManager{}, policy, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}

	date, err := time.Parse(domain.DateFormat, "2026-03-11")
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), validRequest(date))
	require.NoError(t, err)

	assert.Equal(t, "2026-03-11", resp.BookingDate.Format(domain.DateFormat))
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, loc), resp.BookingDate)
}

func TestExecute_HorizonLastDayAccepted(t *testing.T) {
	uc, _, now := newTestUseCase(t)

	req := validRequest(now.AddDate(0, 0, 6))
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}
