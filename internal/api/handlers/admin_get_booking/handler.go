package admin_get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/LRB-BookingService/internal/api/handlers"
	"github.com/m04kA/LRB-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID заявки"
	msgNotFound         = "заявка не найдена"
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

// Handle GET /api/v1/admin/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /admin/bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.GetDetails(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /admin/bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /admin/bookings/{id} - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w, err, h.exposeErrors)
		}
		return
	}

	h.logger.Info("GET /admin/bookings/{id} - Fetched booking id=%d with %d members",
		bookingID, len(result.Members))
	handlers.RespondJSON(w, http.StatusOK, result)
}
