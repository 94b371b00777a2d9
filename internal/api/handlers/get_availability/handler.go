package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/LRB-BookingService/internal/api/handlers"
	"github.com/m04kA/LRB-BookingService/internal/domain"
	getAvailability "github.com/m04kA/LRB-BookingService/internal/usecase/get_availability"
)

const (
	msgMissingRoom  = "параметр room_id обязателен"
	msgInvalidDate  = "некорректный формат booking_date, ожидается YYYY-MM-DD"
	msgRoomNotFound = "комната не найдена"
)

type Handler struct {
	useCase      GetAvailabilityUseCase
	logger       Logger
	exposeErrors bool
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger, exposeErrors bool) *Handler {
	return &Handler{
		useCase:      useCase,
		logger:       logger,
		exposeErrors: exposeErrors,
	}
}

// Handle GET /api/v1/rooms/availability?room_id=R1&booking_date=2024-06-01
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room_id")
	if roomID == "" {
		h.logger.Warn("GET /rooms/availability - Missing room_id")
		handlers.RespondBadRequest(w, msgMissingRoom)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("booking_date"))
	if err != nil {
		h.logger.Warn("GET /rooms/availability - Invalid booking_date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		RoomID: roomID,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/availability - Room not found: room=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/availability - Failed: room=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w, err, h.exposeErrors)
		}
		return
	}

	h.logger.Info("GET /rooms/availability - Computed %d slots: room=%s, date=%s",
		len(result.Slots), roomID, date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
