package create_batch_booking

import (
	"context"
	"errors"
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
	nextID   int64
	creates  int
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.creates++
	f.nextID++
	b.ID = f.nextID
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

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
		201: {
			ID:             201,
			RoomNumber:     "201",
			Purpose:        "lab",
			Capacity:       40,
			OperatingOpen:  "08:00",
			OperatingClose: "20:00",
			Status:         domain.RoomAvailable,
		},
	}}

	uc := NewUseCase(bookings, rooms, passthroughTxManager{}, policy, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc, bookings, now
}

func batchRequest(date time.Time, slots ...types.TimeString) *Request {
	return &Request{
		UserID:    5,
		RoomID:    201,
		Date:      date,
		SlotTimes: slots,
		Purpose:   "Lab session",
	}
}

func TestExecute_BooksAllSlots(t *testing.T) {
	uc, repo, now := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), batchRequest(now, "14:00", "09:00", "09:30"))
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	// Chronological regardless of request order.
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:30"), resp.Slots[1].StartTime)
	assert.Equal(t, types.TimeString("14:00"), resp.Slots[2].StartTime)
	assert.Equal(t, types.TimeString("14:30"), resp.Slots[2].EndTime)
	assert.Equal(t, 3, repo.creates)
}

func TestExecute_DeduplicatesSlots(t *testing.T) {
	uc, repo, now := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), batchRequest(now, "10:00", "10:00", "10:30"))
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 2)
	assert.Equal(t, 2, repo.creates)
}

func TestExecute_AllOrNothingOnConflict(t *testing.T) {
	uc, repo, now := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, batchRequest(now, "09:30"))
	require.NoError(t, err)
	require.Equal(t, 1, repo.creates)

	_, err = uc.Execute(ctx, batchRequest(now, "09:00", "09:30", "10:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPartialFailure)

	var slotsErr *SlotsNotAvailableError
	require.True(t, errors.As(err, &slotsErr))
	assert.Equal(t, []types.TimeString{"09:30"}, slotsErr.Conflicting)
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, slotsErr.Free)

	// Nothing from the failed batch was committed.
	assert.Equal(t, 1, repo.creates)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc, _, now := newTestUseCase(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "no slots",
			req:     batchRequest(now),
			wantErr: ErrInvalidInput,
		},
		{
			name: "too many slots",
			req: func() *Request {
				slots := make([]types.TimeString, domain.MaxBatchSlots+1)
				for i := range slots {
					s, _ := types.NewTimeStringFromMinutes(8*60 + i*30)
					slots[i] = s
				}
				return batchRequest(now, slots...)
			}(),
			wantErr: ErrTooManySlots,
		},
		{
			name:    "unaligned slot",
			req:     batchRequest(now, "09:15"),
			wantErr: ErrNotSlotAligned,
		},
		{
			name:    "slot before window",
			req:     batchRequest(now, "07:30"),
			wantErr: ErrOutsideBookingWindow,
		},
		{
			name:    "last slot would cross the window close",
			req:     batchRequest(now, "20:00"),
			wantErr: ErrOutsideBookingWindow,
		},
		{
			name:    "date in the past",
			req:     batchRequest(now.AddDate(0, 0, -1), "09:00"),
			wantErr: ErrDateInPast,
		},
		{
			name:    "date beyond horizon",
			req:     batchRequest(now.AddDate(0, 0, 7), "09:00"),
			wantErr: ErrDateBeyondHorizon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_PersistsRequestedDateInWesternTimezone(t *testing.T) {
	// A handler-parsed midnight-UTC date must not shift to the previous day
	// when the policy timezone is west of UTC.
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
		201: {
			ID:             201,
			RoomNumber:     "201",
			Purpose:        "lab",
			Capacity:       40,
			OperatingOpen:  "08:00",
			OperatingClose: "20:00",
			Status:         domain.RoomAvailable,
		},
	}}

	uc := NewUseCase(bookings, rooms, passthroughTxManager{}, policy, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}

	date, err := time.Parse(domain.DateFormat, "2026-03-11")
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), batchRequest(date, "09:00"))
	require.NoError(t, err)

	assert.Equal(t, "2026-03-11", resp.BookingDate.Format(domain.DateFormat))
	require.Len(t, bookings.bookings, 1)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, loc), bookings.bookings[0].BookingDate)
}

func TestExecute_LastSlotOfDayAccepted(t *testing.T) {
	uc, _, now := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), batchRequest(now, "19:30"))
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, types.TimeString("20:00"), resp.Slots[0].EndTime)
}
