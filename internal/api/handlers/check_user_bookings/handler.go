package check_user_bookings

import (
	"net/http"
	"time"

	"github.com/m04kA/LRB-BookingService/internal/api/handlers"
	"github.com/m04kA/LRB-BookingService/internal/domain"
	"github.com/m04kA/LRB-BookingService/internal/service/bookings/models"
)

const (
	msgMissingStudentID = "параметр studentId обязателен"
	msgInvalidDate      = "некорректный формат date, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/bookings/check-user?studentId=S1&date=2024-06-01
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID := r.URL.Query().Get("studentId")
	if studentID == "" {
		h.logger.Warn("GET /bookings/check-user - Missing studentId")
		handlers.RespondBadRequest(w, msgMissingStudentID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /bookings/check-user - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CheckUser(r.Context(), &models.CheckUserRequest{
		StudentID: studentID,
		Date:      date,
	})
	if err != nil {
		h.logger.Error("GET /bookings/check-user - Failed: student_id=%s, error=%v", studentID, err)
		handlers.RespondInternalError(w, err, h.exposeErrors)
		return
	}

	h.logger.Info("GET /bookings/check-user - student_id=%s has %d bookings", studentID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
