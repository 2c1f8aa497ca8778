package search_rooms

import (
	"context"
	"fmt"
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/schedule"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/ptr"
)

// UseCase finds every available room whose slot grid can host the
// requested [start, end) range on the given date. Read-only: it shares
// the availability logic with booking creation, so a room returned here
// is exactly a room a create request would accept at the same instant.
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	policy       domain.SchedulePolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	policy domain.SchedulePolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute returns rooms free for the whole range, ordered by room number.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := uc.validate(req); err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.policy.Location)

	if date.Before(uc.policy.Today(now)) || !date.Before(uc.policy.HorizonEnd(now)) {
		return nil, fmt.Errorf("%w: %s", ErrDateOutOfRange, date.Format(domain.DateFormat))
	}

	rooms, err := uc.roomRepo.List(ctx, domain.RoomsFilter{
		Status:      ptr.Ptr(domain.RoomAvailable),
		Purpose:     req.Purpose,
		MinCapacity: req.MinCapacity,
	})
	if err != nil {
		uc.logger.Error("SearchRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Rooms:     []FoundRoom{},
	}
	if len(rooms) == 0 {
		return resp, nil
	}

	roomIDs := make([]int64, len(rooms))
	for i, room := range rooms {
		roomIDs[i] = room.ID
	}

	bookings, err := uc.bookingRepo.GetScheduledByRoomsAndDate(ctx, roomIDs, date)
	if err != nil {
		uc.logger.Error("SearchRooms: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	byRoom := make(map[int64][]*domain.Booking, len(rooms))
	for _, b := range bookings {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}

	for _, room := range rooms {
		grid, err := schedule.Grid(room.OperatingOpen, room.OperatingClose, uc.policy.SlotMinutes)
		if err != nil {
			// A room with a broken operating window cannot host anything;
			// skip it rather than failing the whole search.
			uc.logger.Warn("SearchRooms: skipping room id=%d with invalid window: %v", room.ID, err)
			continue
		}

		slots := schedule.Annotate(grid, uc.policy.SlotMinutes, byRoom[room.ID])
		covered, free := schedule.RangeStatus(slots, req.StartTime, req.EndTime)
		if !covered || !free {
			continue
		}

		resp.Rooms = append(resp.Rooms, FoundRoom{
			ID:          room.ID,
			RoomNumber:  room.RoomNumber,
			Purpose:     room.Purpose,
			Capacity:    room.Capacity,
			Location:    room.Location,
			Description: room.Description,
		})
	}

	uc.logger.Info("SearchRooms: %d of %d rooms free for %s %s-%s",
		len(resp.Rooms), len(rooms), date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	return resp, nil
}

func (uc *UseCase) validate(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}
	if !req.EndTime.IsAfter(req.StartTime) {
		return ErrInvalidTimeRange
	}
	if req.MinCapacity != nil && *req.MinCapacity <= 0 {
		return fmt.Errorf("%w: minCapacity must be positive", ErrInvalidInput)
	}
	return nil
}
