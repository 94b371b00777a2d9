package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/LRB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	GetByRoomAndDate(ctx context.Context, roomID string, date time.Time) ([]*domain.Booking, error)
}

// SlotRepository интерфейс каталога временных слотов
type SlotRepository interface {
	GetAll(ctx context.Context) ([]domain.TimeSlot, error)
}

// RoomRepository интерфейс справочника комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
