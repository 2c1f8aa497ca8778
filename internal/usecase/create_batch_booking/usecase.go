package create_batch_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	bookingRepo "github.com/CSE-4113-IP-Lab/booking-service/internal/infra/storage/booking"
	roomRepo "github.com/CSE-4113-IP-Lab/booking-service/internal/infra/storage/room"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/schedule"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// UseCase books a set of slots for one room and date in a single
// serializable transaction. Either every slot commits or none does; a
// failed batch reports per-slot outcomes so the caller can re-pick.
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

// Execute validates and persists the batch all-or-nothing.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBatchBooking: user=%d, room=%d, date=%s, slots=%d",
		req.UserID, req.RoomID, req.Date.Format(domain.DateFormat), len(req.SlotTimes))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBatchBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if err := validateDate(req.Date, now, uc.policy); err != nil {
		uc.logger.Warn("CreateBatchBooking: date validation failed: %v", err)
		return nil, err
	}

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBatchBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBatchBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if !room.IsBookable() {
		uc.logger.Warn("CreateBatchBooking: room id=%d has status=%s", room.ID, room.Status)
		return nil, ErrRoomUnavailable
	}

	starts := normalizeSlots(req.SlotTimes)
	ends := make([]types.TimeString, len(starts))
	for i, start := range starts {
		end, err := validateSlot(start, room, uc.policy)
		if err != nil {
			uc.logger.Warn("CreateBatchBooking: slot validation failed: %v", err)
			return nil, err
		}
		ends[i] = end
	}

	// Rebuild the date from its components in the policy timezone. Converting
	// the parsed instant would shift it across midnight in zones west of UTC.
	bookingDate := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.policy.Location)

	var booked []BookedSlot

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetScheduledByRoomAndDate(txCtx, room.ID, bookingDate)
		if err != nil {
			uc.logger.Error("CreateBatchBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		grid, err := schedule.Grid(room.OperatingOpen, room.OperatingClose, uc.policy.SlotMinutes)
		if err != nil {
			uc.logger.Error("CreateBatchBooking: failed to build slot grid for room id=%d: %v", room.ID, err)
			return fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
		}
		slots := schedule.Annotate(grid, uc.policy.SlotMinutes, existing)

		// First resolve every slot so a failed batch reports the full
		// per-slot picture, not just the first collision.
		var conflicting, free []types.TimeString
		for i, start := range starts {
			covered, ok := schedule.RangeStatus(slots, start, ends[i])
			if !covered {
				return fmt.Errorf("%w: %s does not lie on room %s's slot grid",
					ErrNotSlotAligned, start, room.RoomNumber)
			}
			if ok {
				free = append(free, start)
			} else {
				conflicting = append(conflicting, start)
			}
		}
		if len(conflicting) > 0 {
			uc.logger.Warn("CreateBatchBooking: %d of %d slots taken for room=%d, date=%s",
				len(conflicting), len(starts), room.ID, bookingDate.Format(domain.DateFormat))
			return &SlotsNotAvailableError{Conflicting: conflicting, Free: free}
		}

		booked = booked[:0]
		for i, start := range starts {
			booking := &domain.Booking{
				RoomID:      room.ID,
				UserID:      req.UserID,
				BookingDate: bookingDate,
				StartTime:   start,
				EndTime:     ends[i],
				Purpose:     req.Purpose,
				Notes:       req.Notes,
				Status:      domain.StatusScheduled,
			}
			// The idempotency token is unique per request, so only the
			// first booking of the batch carries it.
			if i == 0 {
				booking.RequestToken = req.RequestToken
			}

			created, err := uc.bookingRepo.Create(txCtx, booking)
			if err != nil {
				if errors.Is(err, bookingRepo.ErrTimeConflict) {
					return &SlotsNotAvailableError{Conflicting: []types.TimeString{start}}
				}
				uc.logger.Error("CreateBatchBooking: failed to create booking: %v", err)
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}
			booked = append(booked, BookedSlot{
				BookingID: created.ID,
				StartTime: created.StartTime,
				EndTime:   created.EndTime,
			})
		}
		return nil
	})

	if err != nil {
		// A serialization failure at commit means another writer got there
		// first; the loser cannot tell which slots collided, so all of them
		// are reported for a re-pick.
		if bookingRepo.IsConcurrencyConflict(err) {
			uc.logger.Warn("CreateBatchBooking: lost commit race for room=%d, date=%s",
				req.RoomID, bookingDate.Format(domain.DateFormat))
			return nil, &SlotsNotAvailableError{Conflicting: starts}
		}
		return nil, err
	}

	uc.logger.Info("CreateBatchBooking: successfully created %d bookings for room=%d", len(booked), room.ID)

	return &Response{
		RoomID:      room.ID,
		UserID:      req.UserID,
		BookingDate: bookingDate,
		Slots:       booked,
		Purpose:     req.Purpose,
		Status:      string(domain.StatusScheduled),
		CreatedAt:   now,
	}, nil
}
