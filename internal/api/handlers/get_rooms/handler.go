package get_rooms

import (
	"net/http"

	"github.com/m04kA/LRB-BookingService/internal/api/handlers"
)

type Handler struct {
	service      RoomService
	logger       Logger
	exposeErrors bool
}

func NewHandler(service RoomService, logger Logger, exposeErrors bool) *Handler {
	return &Handler{
		service:      service,
		logger:       logger,
		exposeErrors: exposeErrors,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms - Failed: %v", err)
		handlers.RespondInternalError(w, err, h.exposeErrors)
		return
	}

	h.logger.Info("GET /rooms - Fetched %d rooms", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result)
}
