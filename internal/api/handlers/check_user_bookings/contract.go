package check_user_bookings

import (
	"context"

	"github.com/m04kA/LRB-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	CheckUser(ctx context.Context, req *models.CheckUserRequest) (*models.CheckUserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
