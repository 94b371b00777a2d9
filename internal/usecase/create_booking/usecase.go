package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LRB-BookingService/internal/domain"
	roomRepo "github.com/m04kA/LRB-BookingService/internal/infra/storage/room"
	slotRepo "github.com/m04kA/LRB-BookingService/internal/infra/storage/timeslot"
	directoryClient "github.com/m04kA/LRB-BookingService/internal/integrations/directory"
	"github.com/m04kA/LRB-BookingService/pkg/types"
)

// UseCase use case для создания заявки на бронирование
type UseCase struct {
	bookingRepo BookingRepository
	memberRepo  MemberRepository
	slotRepo    SlotRepository
	roomRepo    RoomRepository
	directory   DirectoryClient // nil, если проверка по справочнику выключена
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	memberRepo MemberRepository,
	slotRepo SlotRepository,
	roomRepo RoomRepository,
	directory DirectoryClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		memberRepo:  memberRepo,
		slotRepo:    slotRepo,
		roomRepo:    roomRepo,
		directory:   directory,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания заявки
// Разрешение слота, вычисление позиции в очереди и вставка заявки с
// участниками выполняются в одной сериализуемой транзакции: либо
// фиксируется заявка целиком вместе со всеми участниками, либо ничего
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%s, date=%s, time=%q, applicant=%s, members=%d",
		req.RoomID, req.Date.Format(domain.DateFormat), req.TimeRange, req.Applicant.StudentID, len(req.Members))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем метку начала слота из строки диапазона
	startLabel, _, err := types.SplitTimeRange(req.TimeRange)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to parse time range %q: %v", req.TimeRange, err)
		return nil, fmt.Errorf("%w: %q", ErrSlotNotFound, req.TimeRange)
	}

	// 3. Проверяем комнату
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	if !room.IsBookable() {
		uc.logger.Warn("CreateBooking: room id=%s is not bookable (status=%s)", room.ID, room.Status)
		return nil, ErrRoomNotBookable
	}

	// 4. Проверяем заявителя по справочнику (если проверка включена)
	if uc.directory != nil {
		if err := uc.directory.VerifyStudent(ctx, req.Applicant.StudentID); err != nil {
			if errors.Is(err, directoryClient.ErrStudentNotFound) {
				uc.logger.Warn("CreateBooking: student_id=%s not found in directory", req.Applicant.StudentID)
				return nil, ErrStudentNotFound
			}
			uc.logger.Error("CreateBooking: directory check failed for student_id=%s: %v", req.Applicant.StudentID, err)
			return nil, fmt.Errorf("%w: directory check failed: %v", ErrInternal, err)
		}
	}

	// Переменные для хранения результата
	var (
		created *domain.Booking
		slot    *domain.TimeSlot
	)

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Разрешаем слот по метке времени начала
		slot, err = uc.slotRepo.GetByStartTime(txCtx, startLabel)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: no catalog slot starts at %q", startLabel)
				return fmt.Errorf("%w: %q", ErrSlotNotFound, startLabel.String())
			}
			uc.logger.Error("CreateBooking: failed to resolve slot %q: %v", startLabel, err)
			return fmt.Errorf("%w: failed to resolve slot: %v", ErrInternal, err)
		}

		// 5.2. Читаем существующие заявки на ключ с блокировкой (FOR UPDATE)
		// и вычисляем позицию в очереди; счетчик не зависит от статусов
		existing, err := uc.bookingRepo.GetByKey(txCtx, req.RoomID, slot.ID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get existing bookings: %v", err)
			return fmt.Errorf("%w: failed to get existing bookings: %v", ErrInternal, err)
		}

		queuePosition := len(existing) + domain.FirstQueuePosition

		uc.logger.Info("CreateBooking: %d existing bookings for room=%s, slot=%d, date=%s, assigning position %d",
			len(existing), req.RoomID, slot.ID, req.Date.Format(domain.DateFormat), queuePosition)

		// 5.3. Создаем заявку со статусом pending
		booking := &domain.Booking{
			RoomID:             req.RoomID,
			BookingDate:        req.Date,
			TimeSlotID:         slot.ID,
			Status:             domain.StatusPending,
			QueuePosition:      queuePosition,
			RequesterName:      req.Applicant.Name,
			RequesterStudentID: req.Applicant.StudentID,
			RequesterEmail:     req.Applicant.Email,
			RequesterPhone:     req.Applicant.Phone,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 5.4. Вставляем участников группы, сохраняя порядок из запроса
		members := make([]domain.BookingMember, len(req.Members))
		for i, m := range req.Members {
			members[i] = domain.BookingMember{
				MemberName:      m.Name,
				MemberStudentID: m.StudentID,
			}
		}

		if _, err := uc.memberRepo.CreateBatch(txCtx, created.ID, members); err != nil {
			uc.logger.Error("CreateBooking: failed to create members for booking id=%d: %v", created.ID, err)
			return fmt.Errorf("%w: failed to create members: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, queue position %d",
		created.ID, created.QueuePosition)

	return &Response{
		BookingID:     created.ID,
		RoomID:        created.RoomID,
		BookingDate:   created.BookingDate,
		TimeSlotID:    created.TimeSlotID,
		SlotLabel:     slot.Label(),
		Status:        string(created.Status),
		QueuePosition: created.QueuePosition,
		MembersCount:  len(req.Members),
		CreatedAt:     created.CreatedAt,
	}, nil
}
