package delete_room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/api/middleware"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/service/rooms"
)

const (
	msgInvalidRoomID   = "invalid room ID"
	msgMissingUserID   = "missing user ID"
	msgForbidden       = "access denied"
	msgRoomNotFound    = "room not found"
	msgRoomHasBookings = "room has scheduled bookings"
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

// Handle DELETE /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /rooms/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), roomID, userID); err != nil {
		switch {
		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("DELETE /rooms/{id} - Access denied: room_id=%d, user_id=%d", roomID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("DELETE /rooms/{id} - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rooms.ErrRoomHasBookings):
			h.logger.Warn("DELETE /rooms/{id} - Room has bookings: room_id=%d", roomID)
			handlers.RespondConflict(w, msgRoomHasBookings)

		case errors.Is(err, rooms.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRoomID)

		default:
			h.logger.Error("DELETE /rooms/{id} - Failed to delete room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/{id} - Room deleted: room_id=%d, user_id=%d", roomID, userID)
	w.WriteHeader(http.StatusNoContent)
}
