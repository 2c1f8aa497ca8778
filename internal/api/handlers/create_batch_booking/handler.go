package create_batch_booking

import (
	"errors"
	"net/http"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/api/middleware"
	createBatchBooking "github.com/CSE-4113-IP-Lab/booking-service/internal/usecase/create_batch_booking"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidDateOrTime     = "invalid date or time format"
	msgMissingUserID         = "missing user ID"
	msgInvalidInput          = "invalid booking data"
	msgRoomNotFound          = "room not found"
	msgRoomUnavailable       = "room is not accepting bookings"
	msgDateInPast            = "booking date is in the past"
	msgDateBeyondHorizon     = "booking date is beyond the booking horizon"
	msgOutsideBookingWindow  = "slot is outside the bookable window"
	msgNotSlotAligned        = "slots must be aligned to 30-minute boundaries"
	msgOutsideOperatingHours = "slot is outside the room's operating hours"
	msgTooManySlots          = "too many slots in one request"
	msgSlotsNotAvailable     = "some requested slots are not available"
)

type Handler struct {
	useCase CreateBatchBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBatchBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/batch
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/batch - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBatchBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/batch - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings/batch - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var slotsErr *createBatchBooking.SlotsNotAvailableError

		switch {
		case errors.As(err, &slotsErr):
			h.logger.Warn("POST /bookings/batch - Slots not available: user_id=%d, room_id=%d, conflicting=%d",
				userID, req.RoomID, len(slotsErr.Conflicting))
			handlers.RespondJSON(w, http.StatusConflict, FromSlotsError(msgSlotsNotAvailable, slotsErr))

		case errors.Is(err, createBatchBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings/batch - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBatchBooking.ErrRoomUnavailable):
			handlers.RespondConflict(w, msgRoomUnavailable)

		case errors.Is(err, createBatchBooking.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBatchBooking.ErrDateBeyondHorizon):
			handlers.RespondBadRequest(w, msgDateBeyondHorizon)

		case errors.Is(err, createBatchBooking.ErrOutsideBookingWindow):
			handlers.RespondBadRequest(w, msgOutsideBookingWindow)

		case errors.Is(err, createBatchBooking.ErrNotSlotAligned):
			handlers.RespondBadRequest(w, msgNotSlotAligned)

		case errors.Is(err, createBatchBooking.ErrOutsideOperatingHours):
			handlers.RespondBadRequest(w, msgOutsideOperatingHours)

		case errors.Is(err, createBatchBooking.ErrTooManySlots):
			handlers.RespondBadRequest(w, msgTooManySlots)

		case errors.Is(err, createBatchBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/batch - Failed to create bookings: user_id=%d, room_id=%d, error=%v",
				userID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/batch - Created %d bookings: user_id=%d, room_id=%d",
		len(result.Slots), userID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
