package admin_get_booking

import (
	"context"

	"github.com/m04kA/LRB-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetDetails(ctx context.Context, id int64) (*models.BookingDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
