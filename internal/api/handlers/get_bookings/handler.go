package get_bookings

import (
	"net/http"
	"time"

	"github.com/m04kA/LRB-BookingService/internal/api/handlers"
	"github.com/m04kA/LRB-BookingService/internal/domain"
	"github.com/m04kA/LRB-BookingService/internal/service/bookings/models"
	"github.com/m04kA/LRB-BookingService/pkg/ptr"
)

const (
	msgInvalidDate = "некорректный формат date, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/bookings?date=2024-06-01&room=R1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.GetBookingsRequest{Date: date}
	if room := r.URL.Query().Get("room"); room != "" {
		req.RoomID = ptr.Ptr(room)
	}

	result, err := h.service.GetByDate(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /bookings - Failed: date=%s, error=%v", date.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w, err, h.exposeErrors)
		return
	}

	h.logger.Info("GET /bookings - Fetched %d bookings: date=%s", len(result.Bookings), date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, result)
}
