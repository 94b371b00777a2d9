package rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/LRB-BookingService/internal/domain"
)

// RoomRepository интерфейс справочника комнат
type RoomRepository interface {
	GetAvailable(ctx context.Context) ([]domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// Service сервис справочника комнат
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{roomRepo: roomRepo, logger: logger}
}

// List возвращает комнаты, принимающие заявки
func (s *Service) List(ctx context.Context) (*RoomListResponse, error) {
	s.logger.Info("List: fetching available rooms")

	rooms, err := s.roomRepo.GetAvailable(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &RoomListResponse{Rooms: make([]RoomResponse, len(rooms))}
	for i, r := range rooms {
		resp.Rooms[i] = RoomResponse{
			ID:       r.ID,
			Name:     r.Name,
			Capacity: r.Capacity,
			Status:   string(r.Status),
		}
	}

	s.logger.Info("List: successfully fetched %d rooms", len(resp.Rooms))
	return resp, nil
}
