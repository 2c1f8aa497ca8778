package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	roomRepo "github.com/CSE-4113-IP-Lab/booking-service/internal/infra/storage/room"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/service/rooms/models"
)

// Service manages the room catalog. Reads are public; create, update and
// delete are admin only. While a room still has scheduled bookings, only
// its status may change so existing reservations never become invalid.
type Service struct {
	roomRepo        RoomRepository
	bookingRepo     BookingRepository
	directoryClient DirectoryClient
	policy          domain.SchedulePolicy
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates a rooms service.
func NewService(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	directoryClient DirectoryClient,
	policy domain.SchedulePolicy,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:        roomRepo,
		bookingRepo:     bookingRepo,
		directoryClient: directoryClient,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Create adds a room to the catalog. Admin only.
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("CreateRoom: user=%d, roomNumber=%s", req.RequesterID, req.RoomNumber)

	if err := s.checkAdminAccess(ctx, req.RequesterID); err != nil {
		return nil, err
	}

	room := &domain.Room{
		RoomNumber:     strings.TrimSpace(req.RoomNumber),
		Purpose:        strings.TrimSpace(req.Purpose),
		Capacity:       req.Capacity,
		Location:       strings.TrimSpace(req.Location),
		OperatingOpen:  req.OperatingOpen,
		OperatingClose: req.OperatingClose,
		Status:         domain.RoomAvailable,
		Description:    req.Description,
	}
	if req.Status != nil {
		status, err := toDomainRoomStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		room.Status = status
	}

	if err := validateRoom(room); err != nil {
		s.logger.Warn("CreateRoom: validation failed: %v", err)
		return nil, err
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNumberTaken) {
			s.logger.Warn("CreateRoom: roomNumber=%s already taken", room.RoomNumber)
			return nil, ErrRoomNumberTaken
		}
		s.logger.Error("CreateRoom: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRoom: successfully created room id=%d", created.ID)
	return models.FromDomainRoom(created), nil
}

// GetByID fetches one room. Public.
func (s *Service) GetByID(ctx context.Context, roomID int64) (*models.RoomResponse, error) {
	if roomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoom: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// List returns the catalog with optional filters and pagination. Public.
func (s *Service) List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	filter := domain.RoomsFilter{
		Purpose:     req.Purpose,
		MinCapacity: req.MinCapacity,
		Limit:       req.Limit,
		Offset:      req.Offset,
	}
	if req.Status != nil {
		status, err := toDomainRoomStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}

	rooms, err := s.roomRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomList(rooms), nil
}

// Update applies a partial room change. Admin only. Non-status fields are
// frozen while the room has scheduled bookings.
func (s *Service) Update(ctx context.Context, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("UpdateRoom: user=%d, room=%d", req.RequesterID, req.RoomID)

	if err := s.checkAdminAccess(ctx, req.RequesterID); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("UpdateRoom: repository error for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if s.changesBeyondStatus(req) {
		count, err := s.bookingRepo.CountScheduledByRoom(ctx, room.ID, s.policy.Today(s.timeProvider.Now()))
		if err != nil {
			s.logger.Error("UpdateRoom: failed to count bookings for room id=%d: %v", room.ID, err)
			return nil, fmt.Errorf("%w: Update - failed to count bookings: %v", ErrInternal, err)
		}
		if count > 0 {
			s.logger.Warn("UpdateRoom: room id=%d has %d scheduled bookings", room.ID, count)
			return nil, fmt.Errorf("%w: only status may change while %d bookings are scheduled", ErrRoomHasBookings, count)
		}
	}

	applyRoomPatch(room, req)

	if req.Status != nil {
		status, err := toDomainRoomStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		room.Status = status
	}

	if err := validateRoom(room); err != nil {
		s.logger.Warn("UpdateRoom: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.roomRepo.Update(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNumberTaken) {
			return nil, ErrRoomNumberTaken
		}
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("UpdateRoom: repository error for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRoom: successfully updated room id=%d", updated.ID)
	return models.FromDomainRoom(updated), nil
}

// Delete removes a room without scheduled bookings. Admin only.
func (s *Service) Delete(ctx context.Context, roomID, requesterID int64) error {
	s.logger.Info("DeleteRoom: user=%d, room=%d", requesterID, roomID)

	if err := s.checkAdminAccess(ctx, requesterID); err != nil {
		return err
	}

	if roomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	count, err := s.bookingRepo.CountScheduledByRoom(ctx, roomID, s.policy.Today(s.timeProvider.Now()))
	if err != nil {
		s.logger.Error("DeleteRoom: failed to count bookings for room id=%d: %v", roomID, err)
		return fmt.Errorf("%w: Delete - failed to count bookings: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("DeleteRoom: room id=%d has %d scheduled bookings", roomID, count)
		return fmt.Errorf("%w: %d bookings are scheduled", ErrRoomHasBookings, count)
	}

	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		s.logger.Error("DeleteRoom: repository error for room id=%d: %v", roomID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRoom: successfully deleted room id=%d", roomID)
	return nil
}

func (s *Service) checkAdminAccess(ctx context.Context, requesterID int64) error {
	isAdmin, err := s.directoryClient.IsAdmin(ctx, requesterID)
	if err != nil {
		s.logger.Warn("checkAdminAccess: admin check degraded for user=%d: %v", requesterID, err)
	}
	if !isAdmin {
		return ErrAccessDenied
	}
	return nil
}

// changesBeyondStatus reports whether the patch touches anything other
// than the room status.
func (s *Service) changesBeyondStatus(req *models.UpdateRoomRequest) bool {
	return req.RoomNumber != nil ||
		req.Purpose != nil ||
		req.Capacity != nil ||
		req.Location != nil ||
		req.OperatingOpen != nil ||
		req.OperatingClose != nil ||
		req.Description != nil
}

func applyRoomPatch(room *domain.Room, req *models.UpdateRoomRequest) {
	if req.RoomNumber != nil {
		room.RoomNumber = strings.TrimSpace(*req.RoomNumber)
	}
	if req.Purpose != nil {
		room.Purpose = strings.TrimSpace(*req.Purpose)
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Location != nil {
		room.Location = strings.TrimSpace(*req.Location)
	}
	if req.OperatingOpen != nil {
		room.OperatingOpen = *req.OperatingOpen
	}
	if req.OperatingClose != nil {
		room.OperatingClose = *req.OperatingClose
	}
	if req.Description != nil {
		room.Description = req.Description
	}
}

func validateRoom(room *domain.Room) error {
	if room.RoomNumber == "" {
		return fmt.Errorf("%w: roomNumber is required", ErrInvalidInput)
	}
	if len(room.RoomNumber) > domain.MaxRoomNumberLength {
		return fmt.Errorf("%w: roomNumber exceeds %d characters", ErrInvalidInput, domain.MaxRoomNumberLength)
	}
	if room.Purpose == "" {
		return fmt.Errorf("%w: purpose is required", ErrInvalidInput)
	}
	if room.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if len(room.Location) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location exceeds %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}
	if room.Description != nil && len(*room.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	if err := room.OperatingOpen.Validate(); err != nil {
		return fmt.Errorf("%w: invalid operatingOpen: %v", ErrInvalidInput, err)
	}
	if err := room.OperatingClose.Validate(); err != nil {
		return fmt.Errorf("%w: invalid operatingClose: %v", ErrInvalidInput, err)
	}
	if !room.OperatingOpen.IsBefore(room.OperatingClose) {
		return fmt.Errorf("%w: operatingOpen must be before operatingClose", ErrInvalidInput)
	}
	return nil
}

func toDomainRoomStatus(status string) (domain.RoomStatus, error) {
	for _, valid := range domain.ValidRoomStatuses {
		if domain.RoomStatus(status) == valid {
			return valid, nil
		}
	}
	return "", fmt.Errorf("unknown room status %q", status)
}
