package get_availability

import (
	"time"

	"github.com/m04kA/LRB-BookingService/internal/domain"
)

// Request модель запроса доступности комнаты на дату
type Request struct {
	RoomID string
	Date   time.Time
}

// Response модель ответа со статусами всех слотов каталога
// Слоты следуют в порядке каталога
type Response struct {
	RoomID string
	Date   time.Time
	Slots  []domain.SlotAvailability
}
