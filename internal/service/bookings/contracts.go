package bookings

import (
	"context"
	"time"

	"github.com/m04kA/LRB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByDate(ctx context.Context, date time.Time, roomID *string) ([]*domain.Booking, error)
	GetByRequester(ctx context.Context, studentID string, date time.Time) ([]*domain.Booking, error)
	GetAll(ctx context.Context) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

// MemberRepository интерфейс репозитория участников заявок
type MemberRepository interface {
	GetByBookingID(ctx context.Context, bookingID int64) ([]domain.BookingMember, error)
	DeleteByBookingID(ctx context.Context, bookingID int64) (int64, error)
}

// SlotRepository интерфейс каталога временных слотов
type SlotRepository interface {
	GetAll(ctx context.Context) ([]domain.TimeSlot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
