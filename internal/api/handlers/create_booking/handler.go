package create_booking

import (
	"errors"
	"net/http"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/api/middleware"
	createBooking "github.com/CSE-4113-IP-Lab/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidDate           = "invalid date format, expected YYYY-MM-DD"
	msgInvalidTime           = "invalid time format, expected HH:MM"
	msgMissingUserID         = "missing user ID"
	msgInvalidInput          = "invalid booking data"
	msgRoomNotFound          = "room not found"
	msgRoomUnavailable       = "room is not accepting bookings"
	msgDateInPast            = "booking date is in the past"
	msgDateBeyondHorizon     = "booking date is beyond the booking horizon"
	msgOutsideBookingWindow  = "time is outside the bookable window"
	msgInvalidTimeRange      = "end time must be after start time"
	msgNotSlotAligned        = "times must be aligned to 30-minute slots"
	msgOutsideOperatingHours = "time is outside the room's operating hours"
	msgTimeConflict          = "time range conflicts with an existing booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if req.Date != "" && len(req.Date) != len("2006-01-02") {
			handlers.RespondBadRequest(w, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrTimeConflict):
			h.logger.Warn("POST /bookings - Time conflict: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomUnavailable):
			h.logger.Warn("POST /bookings - Room unavailable: room_id=%d", req.RoomID)
			handlers.RespondConflict(w, msgRoomUnavailable)

		case errors.Is(err, createBooking.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrDateBeyondHorizon):
			handlers.RespondBadRequest(w, msgDateBeyondHorizon)

		case errors.Is(err, createBooking.ErrOutsideBookingWindow):
			handlers.RespondBadRequest(w, msgOutsideBookingWindow)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrNotSlotAligned):
			handlers.RespondBadRequest(w, msgNotSlotAligned)

		case errors.Is(err, createBooking.ErrOutsideOperatingHours):
			handlers.RespondBadRequest(w, msgOutsideOperatingHours)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, room_id=%d, error=%v",
				userID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, room_id=%d",
		result.ID, userID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
