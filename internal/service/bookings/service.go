package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LRB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/LRB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/LRB-BookingService/internal/service/bookings/models"
)

// Service сервис для чтения заявок и админских переходов статусов
type Service struct {
	bookingRepo BookingRepository
	memberRepo  MemberRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	bookingRepo BookingRepository,
	memberRepo MemberRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		memberRepo:  memberRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByDate получает заявки на дату, опционально по комнате
func (s *Service) GetByDate(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	if req.RoomID != nil {
		s.logger.Info("GetByDate: fetching bookings for date=%s, room=%s", req.Date.Format(domain.DateFormat), *req.RoomID)
	} else {
		s.logger.Info("GetByDate: fetching bookings for date=%s", req.Date.Format(domain.DateFormat))
	}

	bookings, err := s.bookingRepo.GetByDate(ctx, req.Date, req.RoomID)
	if err != nil {
		s.logger.Error("GetByDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	slots, err := s.slotIndex(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByDate: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings, slots), nil
}

// CheckUser получает заявки студента на дату
func (s *Service) CheckUser(ctx context.Context, req *models.CheckUserRequest) (*models.CheckUserResponse, error) {
	s.logger.Info("CheckUser: fetching bookings for student=%s, date=%s", req.StudentID, req.Date.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.GetByRequester(ctx, req.StudentID, req.Date)
	if err != nil {
		s.logger.Error("CheckUser: repository error for student=%s: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: CheckUser - repository error: %v", ErrInternal, err)
	}

	slots, err := s.slotIndex(ctx)
	if err != nil {
		return nil, err
	}

	list := models.FromDomainBookingList(bookings, slots)

	s.logger.Info("CheckUser: student=%s has %d bookings on %s", req.StudentID, len(list.Bookings), req.Date.Format(domain.DateFormat))
	return &models.CheckUserResponse{
		HasBookings: len(list.Bookings) > 0,
		Bookings:    list.Bookings,
	}, nil
}

// GetAll получает все заявки (админский список)
func (s *Service) GetAll(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("GetAll: fetching all bookings")

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	slots, err := s.slotIndex(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetAll: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings, slots), nil
}

// GetDetails получает заявку вместе с участниками группы
func (s *Service) GetDetails(ctx context.Context, id int64) (*models.BookingDetailsResponse, error) {
	s.logger.Info("GetDetails: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetDetails: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetDetails: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetDetails - repository error: %v", ErrInternal, err)
	}

	members, err := s.memberRepo.GetByBookingID(ctx, id)
	if err != nil {
		s.logger.Error("GetDetails: failed to fetch members for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetDetails - failed to fetch members: %v", ErrInternal, err)
	}

	slots, err := s.slotIndex(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetDetails: booking id=%d has %d members", id, len(members))
	return &models.BookingDetailsResponse{
		Booking: *models.FromDomainBooking(booking, slots),
		Members: models.FromDomainMembers(members),
	}, nil
}

// UpdateStatus обновляет статус заявки (админская операция)
// Нераспознанный статус отклоняется до обращения к БД; отсутствие заявки
// определяется по нулю затронутых строк и откатывает транзакцию
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", id, req.Status)

	status := domain.BookingStatus(req.Status)
	if !domain.ValidStatus(status) {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	var updated *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.bookingRepo.UpdateStatus(txCtx, id, status); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("UpdateStatus: booking id=%d not found", id)
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			s.logger.Error("UpdateStatus: failed to reread booking id=%d: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - failed to reread booking: %v", ErrInternal, err)
		}

		updated = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	slots, err := s.slotIndex(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", id, status)
	return models.FromDomainBooking(updated, slots), nil
}

// Delete удаляет заявку вместе с участниками группы (админская операция)
// Участники удаляются первыми в той же транзакции; если заявка не найдена,
// транзакция откатывается и удаление участников не фиксируется
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		deleted, err := s.memberRepo.DeleteByBookingID(txCtx, id)
		if err != nil {
			s.logger.Error("Delete: failed to delete members for booking id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - failed to delete members: %v", ErrInternal, err)
		}
		s.logger.Info("Delete: removed %d members of booking id=%d", deleted, id)

		if err := s.bookingRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Delete: booking id=%d not found, rolling back member deletion", id)
				return ErrBookingNotFound
			}
			s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// slotIndex загружает каталог слотов и строит индекс по id
func (s *Service) slotIndex(ctx context.Context) (map[int64]domain.TimeSlot, error) {
	slots, err := s.slotRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("slotIndex: failed to load slot catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load slot catalog: %v", ErrInternal, err)
	}
	return models.SlotsByID(slots), nil
}
