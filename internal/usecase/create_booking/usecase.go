package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	bookingRepo "github.com/CSE-4113-IP-Lab/booking-service/internal/infra/storage/booking"
	roomRepo "github.com/CSE-4113-IP-Lab/booking-service/internal/infra/storage/room"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/schedule"
)

// UseCase creates a single booking: full validation first, then a
// serializable read-check-insert so concurrent requests for the same
// room/date cannot both commit overlapping ranges.
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	policy       domain.SchedulePolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	policy domain.SchedulePolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates and persists a booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, room=%d, date=%s, time=%s-%s",
		req.UserID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Field-level validation.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Booking horizon.
	if err := validateDate(req.Date, now, uc.policy); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Campus-wide window, ordering, slot alignment.
	if err := validateTimeRange(req.StartTime, req.EndTime, uc.policy); err != nil {
		uc.logger.Warn("CreateBooking: time validation failed: %v", err)
		return nil, err
	}

	// 4. Room existence and status.
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if !room.IsBookable() {
		uc.logger.Warn("CreateBooking: room id=%d has status=%s", room.ID, room.Status)
		return nil, ErrRoomUnavailable
	}

	if err := validateRoomWindow(room, req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("CreateBooking: room window validation failed: %v", err)
		return nil, err
	}

	// Rebuild the date from its components in the policy timezone. Converting
	// the parsed instant would shift it across midnight in zones west of UTC.
	bookingDate := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.policy.Location)

	var result *domain.Booking

	// 5. Authoritative availability check and insert, atomically. The
	// overlap re-check runs on rows locked FOR UPDATE; losing a commit
	// race surfaces as a conflict, never a silent double-booking.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetScheduledByRoomAndDate(txCtx, room.ID, bookingDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		grid, err := schedule.Grid(room.OperatingOpen, room.OperatingClose, uc.policy.SlotMinutes)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to build slot grid for room id=%d: %v", room.ID, err)
			return fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
		}

		slots := schedule.Annotate(grid, uc.policy.SlotMinutes, existing)
		covered, free := schedule.RangeStatus(slots, req.StartTime, req.EndTime)
		if !covered {
			return fmt.Errorf("%w: %s-%s does not lie on room %s's slot grid",
				ErrNotSlotAligned, req.StartTime, req.EndTime, room.RoomNumber)
		}
		if !free {
			uc.logger.Warn("CreateBooking: conflict for room=%d, date=%s, time=%s-%s",
				room.ID, bookingDate.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return ErrTimeConflict
		}

		booking := &domain.Booking{
			RoomID:       room.ID,
			UserID:       req.UserID,
			BookingDate:  bookingDate,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Purpose:      req.Purpose,
			Notes:        req.Notes,
			Status:       domain.StatusScheduled,
			RequestToken: req.RequestToken,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrTimeConflict) {
				return ErrTimeConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// A serialization failure at commit is a lost race too.
		if bookingRepo.IsConcurrencyConflict(err) {
			uc.logger.Warn("CreateBooking: lost commit race for room=%d, date=%s",
				req.RoomID, bookingDate.Format(domain.DateFormat))
			return nil, ErrTimeConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		RoomID:      result.RoomID,
		UserID:      result.UserID,
		BookingDate: result.BookingDate,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Purpose:     result.Purpose,
		Notes:       result.Notes,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
