package get_rooms

import (
	"context"

	"github.com/m04kA/LRB-BookingService/internal/service/rooms"
)

type RoomService interface {
	List(ctx context.Context) (*rooms.RoomListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
