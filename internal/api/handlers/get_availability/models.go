package get_availability

import (
	"github.com/m04kA/LRB-BookingService/internal/domain"
	getAvailability "github.com/m04kA/LRB-BookingService/internal/usecase/get_availability"
)

// SlotPayload статус одного слота в HTTP ответе
type SlotPayload struct {
	TimeSlotID int64  `json:"timeSlotId"`
	TimeSlot   string `json:"timeSlot"` // "09:00 AM - 10:00 AM"
	Status     string `json:"status"`   // available | pending | confirmed

	// RequestCount глубина очереди для слотов в статусе pending
	RequestCount int `json:"requestCount"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Room  string        `json:"room"`
	Date  string        `json:"date"`
	Slots []SlotPayload `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotPayload, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotPayload{
			TimeSlotID:   s.Slot.ID,
			TimeSlot:     s.Slot.Label(),
			Status:       string(s.Status),
			RequestCount: s.PendingCount,
		}
	}

	return &AvailabilityResponse{
		Room:  resp.RoomID,
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
