package create_room

import (
	"errors"
	"net/http"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/api/middleware"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/service/rooms"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid operating window time, expected HH:MM"
	msgMissingUserID      = "missing user ID"
	msgForbidden          = "access denied"
	msgInvalidInput       = "invalid room data"
	msgRoomNumberTaken    = "room number already taken"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /rooms - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID)
	if err != nil {
		h.logger.Warn("POST /rooms - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	room, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("POST /rooms - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rooms.ErrRoomNumberTaken):
			h.logger.Warn("POST /rooms - Room number taken: roomNumber=%s", req.RoomNumber)
			handlers.RespondConflict(w, msgRoomNumberTaken)

		case errors.Is(err, rooms.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rooms - Failed to create room: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created: room_id=%d, user_id=%d", room.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(room))
}
