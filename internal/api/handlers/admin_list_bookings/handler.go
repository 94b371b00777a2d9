package admin_list_bookings

import (
	"net/http"

	"github.com/m04kA/LRB-BookingService/internal/api/handlers"
)

type Handler struct {
	service      BookingService
	logger       Logger
	exposeErrors bool
}

func NewHandler(service BookingService, logger Logger, exposeErrors bool) *Handler {
	return &Handler{
		service:      service,
		logger:       logger,
		exposeErrors: exposeErrors,
	}
}

// Handle GET /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed: %v", err)
		handlers.RespondInternalError(w, err, h.exposeErrors)
		return
	}

	h.logger.Info("GET /admin/bookings - Fetched %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
