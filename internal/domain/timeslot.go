package domain

import "github.com/m04kA/LRB-BookingService/pkg/types"

// TimeSlot represents a fixed daily booking window shared by all rooms
// Справочные данные: каталог заполняется миграцией и не изменяется заявками
type TimeSlot struct {
	ID        int64
	StartTime types.TimeLabel
	EndTime   types.TimeLabel
}

// Label returns the human-readable range label, e.g. "09:00 AM - 10:00 AM"
func (s *TimeSlot) Label() string {
	return s.StartTime.String() + " - " + s.EndTime.String()
}
