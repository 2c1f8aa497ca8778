package list_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/service/rooms"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/service/rooms/models"
)

const (
	msgInvalidQuery = "invalid query parameters"

	defaultLimit = 50
	maxLimit     = 200
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

// Handle GET /api/v1/rooms?status=&purpose=&minCapacity=&limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListRoomsRequest{Limit: defaultLimit}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if purpose := query.Get("purpose"); purpose != "" {
		req.Purpose = &purpose
	}
	if raw := query.Get("minCapacity"); raw != "" {
		minCapacity, err := strconv.Atoi(raw)
		if err != nil || minCapacity <= 0 {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.MinCapacity = &minCapacity
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		req.Limit = limit
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.Offset = offset
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(list))
}
