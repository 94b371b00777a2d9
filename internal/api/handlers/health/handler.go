package health

import (
	"net/http"
	"time"

	"github.com/m04kA/LRB-BookingService/internal/api/handlers"
)

type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{
		Success:   true,
		Message:   "Booking Service API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
