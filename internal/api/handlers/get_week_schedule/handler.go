package get_week_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers"
	getWeekSchedule "github.com/CSE-4113-IP-Lab/booking-service/internal/usecase/get_week_schedule"
)

const (
	msgInvalidRoomID = "invalid room ID"
	msgRoomNotFound  = "room not found"
)

type Handler struct {
	useCase GetWeekScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/week-schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/week-schedule - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getWeekSchedule.Request{RoomID: roomID})
	if err != nil {
		switch {
		case errors.Is(err, getWeekSchedule.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/week-schedule - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getWeekSchedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRoomID)

		default:
			h.logger.Error("GET /rooms/{id}/week-schedule - Failed to get schedule: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
