package domain

// SlotStatus display status of a time slot for a room and date
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotPending   SlotStatus = "pending"
	SlotConfirmed SlotStatus = "confirmed"
)

// SlotAvailability отображаемый статус слота для комнаты на дату
// Одна подтвержденная заявка перекрывает любое количество ожидающих
type SlotAvailability struct {
	Slot   TimeSlot
	Status SlotStatus

	// PendingCount глубина очереди: количество ожидающих заявок на слот
	// Заполняется только для статуса pending
	PendingCount int
}

// IsFree returns true if the slot has no pending or confirmed bookings
func (a *SlotAvailability) IsFree() bool {
	return a.Status == SlotAvailable
}

// ClassifySlot derives the display status of a slot from its bookings
// Правило приоритета, не подсчета: confirmed перекрывает pending
func ClassifySlot(slot TimeSlot, bookings []*Booking) SlotAvailability {
	pending := 0
	confirmed := false

	for _, b := range bookings {
		switch b.Status {
		case StatusConfirmed:
			confirmed = true
		case StatusPending:
			pending++
		}
	}

	switch {
	case confirmed:
		return SlotAvailability{Slot: slot, Status: SlotConfirmed}
	case pending > 0:
		return SlotAvailability{Slot: slot, Status: SlotPending, PendingCount: pending}
	default:
		return SlotAvailability{Slot: slot, Status: SlotAvailable}
	}
}
