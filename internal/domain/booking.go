package domain

import "time"

// BookingStatus represents the status of a booking request
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a room booking request in the system
type Booking struct {
	ID          int64
	RoomID      string
	BookingDate time.Time
	TimeSlotID  int64
	Status      BookingStatus

	// QueuePosition порядковый номер заявки среди всех заявок
	// на ту же комнату, слот и дату; присваивается при создании
	QueuePosition int

	// Данные заявителя
	RequesterName      string
	RequesterStudentID string
	RequesterEmail     string
	RequesterPhone     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the booking is still waiting for an admin decision
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsConfirmed returns true if the booking has been confirmed by an admin
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled by an admin
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// ValidStatus reports whether s is one of the recognized booking statuses
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// BookingMember represents a group member accompanying a booking request
// Члены группы создаются только вместе с заявкой и удаляются только каскадно
type BookingMember struct {
	ID              int64
	BookingID       int64
	MemberName      string
	MemberStudentID string
}
