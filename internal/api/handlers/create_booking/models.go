package create_booking

import (
	"time"

	"github.com/m04kA/LRB-BookingService/internal/domain"
	createBooking "github.com/m04kA/LRB-BookingService/internal/usecase/create_booking"
)

// ApplicantPayload данные заявителя в HTTP запросе
type ApplicantPayload struct {
	Name  string `json:"name"`
	ID    string `json:"id"` // Номер студенческого билета
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// MemberPayload данные участника группы в HTTP запросе
type MemberPayload struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Room      string           `json:"room"`
	Date      string           `json:"date"` // "2024-06-01"
	Time      string           `json:"time"` // "09:00 AM - 10:00 AM"
	Applicant ApplicantPayload `json:"applicant"`
	Members   []MemberPayload  `json:"members"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID            int64  `json:"id"`
	Room          string `json:"room"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	QueuePosition int    `json:"queuePosition"`
	MembersCount  int    `json:"membersCount"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	members := make([]createBooking.Member, len(r.Members))
	for i, m := range r.Members {
		members[i] = createBooking.Member{
			Name:      m.Name,
			StudentID: m.ID,
		}
	}

	return &createBooking.Request{
		RoomID:    r.Room,
		Date:      bookingDate,
		TimeRange: r.Time,
		Applicant: createBooking.Applicant{
			Name:      r.Applicant.Name,
			StudentID: r.Applicant.ID,
			Email:     r.Applicant.Email,
			Phone:     r.Applicant.Phone,
		},
		Members: members,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:            resp.BookingID,
		Room:          resp.RoomID,
		Date:          resp.BookingDate.Format(domain.DateFormat),
		Time:          resp.SlotLabel,
		Status:        resp.Status,
		QueuePosition: resp.QueuePosition,
		MembersCount:  resp.MembersCount,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
