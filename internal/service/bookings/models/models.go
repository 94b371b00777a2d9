package models

import (
	"time"

	"github.com/m04kA/LRB-BookingService/internal/domain"
)

// Request модели

// GetBookingsRequest запрос на получение заявок по дате
type GetBookingsRequest struct {
	Date   time.Time
	RoomID *string // Опциональный фильтр по комнате
}

// CheckUserRequest запрос на проверку заявок студента на дату
type CheckUserRequest struct {
	StudentID string
	Date      time.Time
}

// UpdateStatusRequest запрос на смену статуса заявки
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными заявки
type BookingResponse struct {
	ID            int64  `json:"id"`
	RoomID        string `json:"roomId"`
	BookingDate   string `json:"bookingDate"` // "2024-06-01"
	TimeSlotID    int64  `json:"timeSlotId"`
	StartTime     string `json:"startTime,omitempty"` // "09:00 AM"
	EndTime       string `json:"endTime,omitempty"`   // "10:00 AM"
	Status        string `json:"status"`
	QueuePosition int    `json:"queuePosition"`

	RequesterName      string `json:"requesterName"`
	RequesterStudentID string `json:"requesterStudentId"`
	RequesterEmail     string `json:"requesterEmail,omitempty"`
	RequesterPhone     string `json:"requesterPhone,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MemberResponse ответ с данными участника группы
type MemberResponse struct {
	ID              int64  `json:"id"`
	MemberName      string `json:"memberName"`
	MemberStudentID string `json:"memberStudentId"`
}

// BookingListResponse ответ со списком заявок
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// BookingDetailsResponse заявка вместе с участниками группы
type BookingDetailsResponse struct {
	Booking BookingResponse  `json:"booking"`
	Members []MemberResponse `json:"members"`
}

// CheckUserResponse ответ на проверку заявок студента
type CheckUserResponse struct {
	HasBookings bool              `json:"hasBookings"`
	Bookings    []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// Метки времени слота подставляются из каталога, если он передан
func FromDomainBooking(b *domain.Booking, slots map[int64]domain.TimeSlot) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		RoomID:             b.RoomID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		TimeSlotID:         b.TimeSlotID,
		Status:             string(b.Status),
		QueuePosition:      b.QueuePosition,
		RequesterName:      b.RequesterName,
		RequesterStudentID: b.RequesterStudentID,
		RequesterEmail:     b.RequesterEmail,
		RequesterPhone:     b.RequesterPhone,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if slot, ok := slots[b.TimeSlotID]; ok {
		resp.StartTime = slot.StartTime.String()
		resp.EndTime = slot.EndTime.String()
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, slots map[int64]domain.TimeSlot) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, slots); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainMembers конвертирует участников в DTO, сохраняя порядок
func FromDomainMembers(members []domain.BookingMember) []MemberResponse {
	resp := make([]MemberResponse, len(members))
	for i, m := range members {
		resp[i] = MemberResponse{
			ID:              m.ID,
			MemberName:      m.MemberName,
			MemberStudentID: m.MemberStudentID,
		}
	}
	return resp
}

// SlotsByID строит индекс каталога слотов по идентификатору
func SlotsByID(slots []domain.TimeSlot) map[int64]domain.TimeSlot {
	index := make(map[int64]domain.TimeSlot, len(slots))
	for _, s := range slots {
		index[s.ID] = s
	}
	return index
}
