package get_bookings

import (
	"context"

	"github.com/m04kA/LRB-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByDate(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
