package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/LRB-BookingService/internal/domain"
	"github.com/m04kA/LRB-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByKey(ctx context.Context, roomID string, slotID int64, date time.Time) ([]*domain.Booking, error)
}

// MemberRepository интерфейс репозитория участников заявок
type MemberRepository interface {
	CreateBatch(ctx context.Context, bookingID int64, members []domain.BookingMember) ([]domain.BookingMember, error)
}

// SlotRepository интерфейс каталога временных слотов
type SlotRepository interface {
	GetByStartTime(ctx context.Context, start types.TimeLabel) (*domain.TimeSlot, error)
}

// RoomRepository интерфейс справочника комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// DirectoryClient интерфейс клиента университетского справочника
type DirectoryClient interface {
	VerifyStudent(ctx context.Context, studentID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
