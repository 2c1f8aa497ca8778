package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	bookingRepo "github.com/CSE-4113-IP-Lab/booking-service/internal/infra/storage/booking"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/service/bookings/models"
)

// Service exposes booking reads and cancellation with ownership checks:
// a booking is visible to its owner and to administrators, nobody else.
type Service struct {
	bookingRepo     BookingRepository
	directoryClient DirectoryClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates a bookings service.
func NewService(
	bookingRepo BookingRepository,
	directoryClient DirectoryClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:     bookingRepo,
		directoryClient: directoryClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID fetches one booking, owner or admin only.
func (s *Service) GetByID(ctx context.Context, bookingID, requesterID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", bookingID, requesterID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkOwnerAccess(ctx, booking, requesterID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", requesterID, bookingID)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings fetches a user's booking history, optionally filtered
// by status. Only the user themselves or an admin may read it.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, requester=%d", req.UserID, req.RequesterID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RequesterID != req.UserID {
		isAdmin, err := s.directoryClient.IsAdmin(ctx, req.RequesterID)
		if err != nil {
			s.logger.Warn("GetUserBookings: admin check degraded for user=%d: %v", req.RequesterID, err)
		}
		if !isAdmin {
			s.logger.Warn("GetUserBookings: user=%d denied access to user=%d's history", req.RequesterID, req.UserID)
			return nil, ErrAccessDenied
		}
	}

	var status *domain.BookingStatus
	if req.Status != nil {
		parsed, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &parsed
	}

	bookings, err := s.bookingRepo.GetByUser(ctx, domain.UserBookingsFilter{
		UserID: req.UserID,
		Status: status,
	})
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel moves a scheduled booking to cancelled, freeing its slots. The
// read-check-update runs in one transaction so a concurrent cancel or
// completion sweep cannot interleave.
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d for user=%d", req.BookingID, req.RequesterID)

	var cancelled *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if err := s.checkOwnerAccess(txCtx, booking, req.RequesterID); err != nil {
			return err
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d has status=%s", booking.ID, booking.Status)
			return ErrCannotCancel
		}

		if err := s.bookingRepo.Cancel(txCtx, booking.ID); err != nil {
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		// Mirror the cancelled_at = NOW() stamp the repository writes, so
		// the response carries the timestamp without a re-fetch.
		now := s.timeProvider.Now()
		booking.Status = domain.StatusCancelled
		booking.CancelledAt = &now
		booking.UpdatedAt = now
		cancelled = booking
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrBookingNotFound) && !errors.Is(err, ErrAccessDenied) && !errors.Is(err, ErrCannotCancel) {
			s.logger.Error("Cancel: failed to cancel booking id=%d: %v", req.BookingID, err)
		}
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", req.BookingID)
	return models.FromDomainBooking(cancelled), nil
}

// checkOwnerAccess allows the booking owner and administrators.
func (s *Service) checkOwnerAccess(ctx context.Context, booking *domain.Booking, requesterID int64) error {
	if booking.UserID == requesterID {
		return nil
	}

	isAdmin, err := s.directoryClient.IsAdmin(ctx, requesterID)
	if err != nil {
		// Degraded directory: fall through to the non-admin path.
		s.logger.Warn("checkOwnerAccess: admin check degraded for user=%d: %v", requesterID, err)
	}
	if !isAdmin {
		return ErrAccessDenied
	}
	return nil
}
