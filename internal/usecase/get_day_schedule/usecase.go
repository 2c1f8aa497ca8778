package get_day_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	roomRepo "github.com/CSE-4113-IP-Lab/booking-service/internal/infra/storage/room"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/schedule"
)

// UseCase resolves one room's slot availability for a single date.
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

// Execute builds the slot grid for the room's operating hours and marks
// each slot that intersects a scheduled booking as unavailable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.policy.Location)

	if date.Before(uc.policy.Today(now)) || !date.Before(uc.policy.HorizonEnd(now)) {
		return nil, fmt.Errorf("%w: %s", ErrDateOutOfRange, date.Format(domain.DateFormat))
	}

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetDaySchedule: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetScheduledByRoomAndDate(ctx, room.ID, date)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get bookings for room id=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	grid, err := schedule.Grid(room.OperatingOpen, room.OperatingClose, uc.policy.SlotMinutes)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to build slot grid for room id=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
	}

	return &Response{
		RoomID:     room.ID,
		RoomNumber: room.RoomNumber,
		Schedule: domain.DaySchedule{
			Date:  date,
			Slots: schedule.Annotate(grid, uc.policy.SlotMinutes, bookings),
		},
	}, nil
}
