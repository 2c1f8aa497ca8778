package rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	roomRepo "github.com/CSE-4113-IP-Lab/booking-service/internal/infra/storage/room"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/service/rooms/models"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/ptr"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRoomRepo struct {
	rooms  map[int64]*domain.Room
	nextID int64
}

func (f *fakeRoomRepo) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	for _, r := range f.rooms {
		if r.RoomNumber == room.RoomNumber {
			return nil, roomRepo.ErrRoomNumberTaken
		}
	}
	f.nextID++
	room.ID = f.nextID
	f.rooms[room.ID] = room
	return room, nil
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (f *fakeRoomRepo) List(_ context.Context, filter domain.RoomsFilter) ([]*domain.Room, error) {
	var out []*domain.Room
	for _, r := range f.rooms {
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if filter.MinCapacity != nil && r.Capacity < *filter.MinCapacity {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, room *domain.Room) (*domain.Room, error) {
	if _, ok := f.rooms[room.ID]; !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	f.rooms[room.ID] = room
	return room, nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.rooms[id]; !ok {
		return roomRepo.ErrRoomNotFound
	}
	delete(f.rooms, id)
	return nil
}

type fakeBookingRepo struct {
	scheduled map[int64]int
}

func (f *fakeBookingRepo) CountScheduledByRoom(_ context.Context, roomID int64, _ time.Time) (int, error) {
	return f.scheduled[roomID], nil
}

type fakeDirectory struct {
	admins map[int64]bool
}

func (f *fakeDirectory) IsAdmin(_ context.Context, userID int64) (bool, error) {
	return f.admins[userID], nil
}

func newTestService(t *testing.T) (*Service, *fakeRoomRepo, *fakeBookingRepo) {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Dhaka")
	require.NoError(t, err)

	rooms := &fakeRoomRepo{
		rooms: map[int64]*domain.Room{
			1: {
				ID:             1,
				RoomNumber:     "101",
				Purpose:        "lecture",
				Capacity:       60,
				OperatingOpen:  "08:00",
				OperatingClose: "20:00",
				Status:         domain.RoomAvailable,
			},
		},
		nextID: 1,
	}
	bookings := &fakeBookingRepo{scheduled: map[int64]int{}}
	dir := &fakeDirectory{admins: map[int64]bool{99: true}}

	policy := domain.SchedulePolicy{
		SlotMinutes: 30,
		WindowOpen:  "08:00",
		WindowClose: "20:00",
		HorizonDays: 7,
		Location:    loc,
	}

	svc := NewService(rooms, bookings, dir, policy, nopLogger{})
	return svc, rooms, bookings
}

func createRequest() *models.CreateRoomRequest {
	return &models.CreateRoomRequest{
		RequesterID:    99,
		RoomNumber:     "202",
		Purpose:        "seminar",
		Capacity:       25,
		Location:       "2nd floor, west wing",
		OperatingOpen:  "08:00",
		OperatingClose: "18:00",
	}
}

func TestCreate(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)
	assert.Equal(t, "202", resp.RoomNumber)
	assert.Equal(t, "available", resp.Status)
	assert.Len(t, repo.rooms, 2)

	// Duplicate room number.
	_, err = svc.Create(ctx, createRequest())
	assert.ErrorIs(t, err, ErrRoomNumberTaken)

	// Non-admin.
	req := createRequest()
	req.RequesterID = 10
	req.RoomNumber = "203"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(r *models.CreateRoomRequest)
	}{
		{"empty room number", func(r *models.CreateRoomRequest) { r.RoomNumber = "  " }},
		{"zero capacity", func(r *models.CreateRoomRequest) { r.Capacity = 0 }},
		{"inverted window", func(r *models.CreateRoomRequest) { r.OperatingOpen = "18:00"; r.OperatingClose = "08:00" }},
		{"bad open time", func(r *models.CreateRoomRequest) { r.OperatingOpen = "8am" }},
		{"unknown status", func(r *models.CreateRoomRequest) { r.Status = ptr.Ptr("closed") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest()
			tt.mutate(req)
			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_StatusOnlyWhileBooked(t *testing.T) {
	svc, repo, bookings := newTestService(t)
	ctx := context.Background()
	bookings.scheduled[1] = 3

	// Status change is allowed.
	resp, err := svc.Update(ctx, &models.UpdateRoomRequest{
		RequesterID: 99,
		RoomID:      1,
		Status:      ptr.Ptr("maintenance"),
	})
	require.NoError(t, err)
	assert.Equal(t, "maintenance", resp.Status)

	// Capacity change is not.
	_, err = svc.Update(ctx, &models.UpdateRoomRequest{
		RequesterID: 99,
		RoomID:      1,
		Capacity:    ptr.Ptr(80),
	})
	assert.ErrorIs(t, err, ErrRoomHasBookings)
	assert.Equal(t, 60, repo.rooms[1].Capacity)
}

func TestUpdate_FullPatchWhenFree(t *testing.T) {
	svc, repo, _ := newTestService(t)

	resp, err := svc.Update(context.Background(), &models.UpdateRoomRequest{
		RequesterID:    99,
		RoomID:         1,
		Capacity:       ptr.Ptr(75),
		OperatingOpen:  ptr.Ptr(types.TimeString("09:00")),
		OperatingClose: ptr.Ptr(types.TimeString("17:00")),
	})
	require.NoError(t, err)
	assert.Equal(t, 75, resp.Capacity)
	assert.Equal(t, types.TimeString("09:00"), resp.OperatingOpen)
	assert.Equal(t, 75, repo.rooms[1].Capacity)
}

func TestUpdate_Errors(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, &models.UpdateRoomRequest{RequesterID: 99, RoomID: 404})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.Update(ctx, &models.UpdateRoomRequest{RequesterID: 10, RoomID: 1})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDelete(t *testing.T) {
	svc, repo, bookings := newTestService(t)
	ctx := context.Background()

	err := svc.Delete(ctx, 1, 10)
	assert.ErrorIs(t, err, ErrAccessDenied)

	bookings.scheduled[1] = 1
	err = svc.Delete(ctx, 1, 99)
	assert.ErrorIs(t, err, ErrRoomHasBookings)
	assert.Len(t, repo.rooms, 1)

	bookings.scheduled[1] = 0
	err = svc.Delete(ctx, 1, 99)
	require.NoError(t, err)
	assert.Empty(t, repo.rooms)

	err = svc.Delete(ctx, 1, 99)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGetByIDAndList(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "101", resp.RoomNumber)

	_, err = svc.GetByID(ctx, 404)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	list, err := svc.List(ctx, &models.ListRoomsRequest{Status: ptr.Ptr("available")})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	_, err = svc.List(ctx, &models.ListRoomsRequest{Status: ptr.Ptr("bogus")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
