package search_rooms

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	searchRooms "github.com/CSE-4113-IP-Lab/booking-service/internal/usecase/search_rooms"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

const (
	msgInvalidDate      = "invalid date, expected YYYY-MM-DD"
	msgInvalidTime      = "invalid time, expected HH:MM"
	msgInvalidCapacity  = "invalid minCapacity"
	msgInvalidTimeRange = "end time must be after start time"
	msgDateOutOfRange   = "date is outside the visible booking horizon"
)

type Handler struct {
	useCase SearchRoomsUseCase
	logger  Logger
}

func NewHandler(useCase SearchRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/search?date=&start=&end=&purpose=&minCapacity=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /rooms/search - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(query.Get("start"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	endTime, err := types.NewTimeStringFromString(query.Get("end"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	req := &searchRooms.Request{
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}

	if purpose := query.Get("purpose"); purpose != "" {
		req.Purpose = &purpose
	}
	if raw := query.Get("minCapacity"); raw != "" {
		minCapacity, err := strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidCapacity)
			return
		}
		req.MinCapacity = &minCapacity
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, searchRooms.ErrDateOutOfRange):
			handlers.RespondBadRequest(w, msgDateOutOfRange)

		case errors.Is(err, searchRooms.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, searchRooms.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("GET /rooms/search - Failed to search rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
