package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/LRB-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/LRB-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgSlotNotFound       = "временной слот не найден"
	msgRoomNotFound       = "комната не найдена"
	msgRoomNotBookable    = "комната не принимает заявки"
	msgStudentNotFound    = "студент не найден в справочнике"
	msgInvalidInput       = "некорректные данные заявки"
)

type Handler struct {
	useCase      CreateBookingUseCase
	logger       Logger
	exposeErrors bool
}

func NewHandler(useCase CreateBookingUseCase, logger Logger, exposeErrors bool) *Handler {
	return &Handler{
		useCase:      useCase,
		logger:       logger,
		exposeErrors: exposeErrors,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: time=%q", req.Time)
			handlers.RespondBadRequest(w, msgSlotNotFound+": "+req.Time)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room=%s", req.Room)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomNotBookable):
			h.logger.Warn("POST /bookings - Room not bookable: room=%s", req.Room)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotBookable)

		case errors.Is(err, createBooking.ErrStudentNotFound):
			h.logger.Warn("POST /bookings - Student not found: student_id=%s", req.Applicant.ID)
			handlers.RespondBadRequest(w, msgStudentNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room=%s, date=%s, error=%v",
				req.Room, req.Date, err)
			handlers.RespondInternalError(w, err, h.exposeErrors)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, room=%s, queue_position=%d",
		result.BookingID, result.RoomID, result.QueuePosition)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
