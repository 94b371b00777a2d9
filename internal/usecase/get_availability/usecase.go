package get_availability

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/LRB-BookingService/internal/domain"
	roomRepo "github.com/m04kA/LRB-BookingService/internal/infra/storage/room"
)

// UseCase use case для получения доступности комнаты по слотам на дату
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute вычисляет отображаемый статус каждого слота каталога
// Каталог и заявки читаются в одной read-only транзакции, чтобы все слоты
// были вычислены из единого снимка таблицы заявок
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: room=%s, date=%s", req.RoomID, req.Date.Format(domain.DateFormat))

	if strings.TrimSpace(req.RoomID) == "" {
		return nil, fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	var result []domain.SlotAvailability

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		// 1. Проверяем комнату
		if _, err := uc.roomRepo.GetByID(txCtx, req.RoomID); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("GetAvailability: room id=%s not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("GetAvailability: failed to get room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 2. Загружаем каталог слотов
		slots, err := uc.slotRepo.GetAll(txCtx)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to load slot catalog: %v", err)
			return fmt.Errorf("%w: failed to load slot catalog: %v", ErrInternal, err)
		}

		// 3. Загружаем все заявки комнаты на дату одним запросом
		bookings, err := uc.bookingRepo.GetByRoomAndDate(txCtx, req.RoomID, req.Date)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4. Распределяем заявки по слотам и классифицируем каждый слот
		bySlot := make(map[int64][]*domain.Booking, len(slots))
		for _, b := range bookings {
			bySlot[b.TimeSlotID] = append(bySlot[b.TimeSlotID], b)
		}

		result = make([]domain.SlotAvailability, len(slots))
		for i, slot := range slots {
			result[i] = domain.ClassifySlot(slot, bySlot[slot.ID])
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailability: computed %d slots for room=%s, date=%s",
		len(result), req.RoomID, req.Date.Format(domain.DateFormat))

	return &Response{
		RoomID: req.RoomID,
		Date:   req.Date,
		Slots:  result,
	}, nil
}
