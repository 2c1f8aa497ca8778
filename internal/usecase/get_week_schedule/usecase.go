package get_week_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	roomRepo "github.com/CSE-4113-IP-Lab/booking-service/internal/infra/storage/room"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/schedule"
)

// UseCase aggregates one room's availability over the rolling horizon:
// one DaySchedule per day, offsets 0..6 from today in the policy
// timezone. The slot grid is identical on every day, so availability is
// the only thing that varies across the week.
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

// Execute builds the weekly schedule for the room.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetWeekSchedule: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	grid, err := schedule.Grid(room.OperatingOpen, room.OperatingClose, uc.policy.SlotMinutes)
	if err != nil {
		uc.logger.Error("GetWeekSchedule: failed to build slot grid for room id=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
	}

	today := uc.policy.Today(uc.timeProvider.Now())

	days := make([]domain.DaySchedule, 0, uc.policy.HorizonDays)
	for offset := 0; offset < uc.policy.HorizonDays; offset++ {
		date := today.AddDate(0, 0, offset)

		bookings, err := uc.bookingRepo.GetScheduledByRoomAndDate(ctx, room.ID, date)
		if err != nil {
			uc.logger.Error("GetWeekSchedule: failed to get bookings for room id=%d, date=%s: %v",
				room.ID, date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		days = append(days, domain.DaySchedule{
			Date:  date,
			Slots: schedule.Annotate(grid, uc.policy.SlotMinutes, bookings),
		})
	}

	return &Response{
		Schedule: domain.WeeklySchedule{
			RoomID:     room.ID,
			RoomNumber: room.RoomNumber,
			Days:       days,
		},
	}, nil
}
