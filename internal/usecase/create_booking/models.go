package create_booking

import "time"

// Applicant заявитель — автор заявки на бронирование
type Applicant struct {
	Name      string // Полное имя
	StudentID string // Номер студенческого билета
	Email     string
	Phone     string
}

// Member участник группы, сопровождающий заявку
type Member struct {
	Name      string
	StudentID string
}

// Request модель запроса на создание заявки
type Request struct {
	RoomID    string    // ID комнаты
	Date      time.Time // Дата бронирования (без времени)
	TimeRange string    // Диапазон слота, например "09:00 AM - 10:00 AM"
	Applicant Applicant
	Members   []Member // Может быть пустым
}

// Response модель ответа с созданной заявкой
type Response struct {
	BookingID     int64
	RoomID        string
	BookingDate   time.Time
	TimeSlotID    int64
	SlotLabel     string // Диапазон слота в формате каталога
	Status        string
	QueuePosition int // Позиция заявки в очереди на слот
	MembersCount  int
	CreatedAt     time.Time
}
