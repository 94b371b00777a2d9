package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LRB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/LRB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/LRB-BookingService/internal/service/bookings/models"
)

// --- фейки ---

type fakeBookingRepo struct {
	bookings      map[int64]*domain.Booking
	statusUpdates []domain.BookingStatus
	deletedIDs    []int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		out := *b
		return &out, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, date time.Time, roomID *string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if !b.BookingDate.Equal(date) {
			continue
		}
		if roomID != nil && b.RoomID != *roomID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByRequester(_ context.Context, studentID string, date time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.RequesterStudentID == studentID && b.BookingDate.Equal(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetAll(_ context.Context) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeMemberRepo struct {
	members map[int64][]domain.BookingMember

	// deleteCalls фиксирует вызовы DeleteByBookingID, даже откатившиеся
	deleteCalls []int64
}

func (f *fakeMemberRepo) GetByBookingID(_ context.Context, bookingID int64) ([]domain.BookingMember, error) {
	return f.members[bookingID], nil
}

func (f *fakeMemberRepo) DeleteByBookingID(_ context.Context, bookingID int64) (int64, error) {
	f.deleteCalls = append(f.deleteCalls, bookingID)
	n := int64(len(f.members[bookingID]))
	delete(f.members, bookingID)
	return n, nil
}

func (f *fakeMemberRepo) restore(bookingID int64, members []domain.BookingMember) {
	if f.members == nil {
		f.members = make(map[int64][]domain.BookingMember)
	}
	f.members[bookingID] = members
}

type fakeSlotRepo struct{}

func (fakeSlotRepo) GetAll(_ context.Context) ([]domain.TimeSlot, error) {
	return []domain.TimeSlot{
		{ID: 1, StartTime: "09:00 AM", EndTime: "10:00 AM"},
		{ID: 2, StartTime: "10:00 AM", EndTime: "11:00 AM"},
	}, nil
}

// fakeTxManager выполняет fn напрямую; при ошибке возвращает состояние
// участников, имитируя откат транзакции
type fakeTxManager struct {
	memberRepo *fakeMemberRepo
	rolledBack bool
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.run(ctx, fn)
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.run(ctx, fn)
}

func (f *fakeTxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	var snapshot map[int64][]domain.BookingMember
	if f.memberRepo != nil {
		snapshot = make(map[int64][]domain.BookingMember, len(f.memberRepo.members))
		for id, ms := range f.memberRepo.members {
			snapshot[id] = ms
		}
	}

	if err := fn(ctx); err != nil {
		f.rolledBack = true
		if f.memberRepo != nil {
			f.memberRepo.members = snapshot
		}
		return err
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- хелперы ---

var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func newTestService() (*Service, *fakeBookingRepo, *fakeMemberRepo, *fakeTxManager) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {
			ID: 1, RoomID: "R1", BookingDate: testDate, TimeSlotID: 1,
			Status: domain.StatusPending, QueuePosition: 1,
			RequesterName: "Анна Смирнова", RequesterStudentID: "S1001",
		},
		2: {
			ID: 2, RoomID: "R2", BookingDate: testDate, TimeSlotID: 2,
			Status: domain.StatusConfirmed, QueuePosition: 1,
			RequesterName: "Пётр Иванов", RequesterStudentID: "S1002",
		},
	}}
	members := &fakeMemberRepo{}
	members.restore(1, []domain.BookingMember{
		{ID: 10, BookingID: 1, MemberName: "Мария Кузнецова", MemberStudentID: "S1003"},
		{ID: 11, BookingID: 1, MemberName: "Олег Попов", MemberStudentID: "S1004"},
	})
	tx := &fakeTxManager{memberRepo: members}
	svc := NewService(bookings, members, fakeSlotRepo{}, tx, noopLogger{})
	return svc, bookings, members, tx
}

// --- тесты ---

func TestGetByDate_FilterByRoom(t *testing.T) {
	svc, _, _, _ := newTestService()

	roomID := "R1"
	resp, err := svc.GetByDate(context.Background(), &models.GetBookingsRequest{Date: testDate, RoomID: &roomID})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
	assert.Equal(t, "09:00 AM", resp.Bookings[0].StartTime)
	assert.Equal(t, "10:00 AM", resp.Bookings[0].EndTime)
}

func TestGetByDate_WithoutRoomReturnsAll(t *testing.T) {
	svc, _, _, _ := newTestService()

	resp, err := svc.GetByDate(context.Background(), &models.GetBookingsRequest{Date: testDate})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestCheckUser(t *testing.T) {
	svc, _, _, _ := newTestService()

	resp, err := svc.CheckUser(context.Background(), &models.CheckUserRequest{StudentID: "S1001", Date: testDate})
	require.NoError(t, err)
	assert.True(t, resp.HasBookings)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "S1001", resp.Bookings[0].RequesterStudentID)

	resp, err = svc.CheckUser(context.Background(), &models.CheckUserRequest{StudentID: "S9999", Date: testDate})
	require.NoError(t, err)
	assert.False(t, resp.HasBookings)
	assert.Empty(t, resp.Bookings)
}

func TestGetDetails(t *testing.T) {
	svc, _, _, _ := newTestService()

	resp, err := svc.GetDetails(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.Booking.ID)
	require.Len(t, resp.Members, 2)
	assert.Equal(t, "S1003", resp.Members[0].MemberStudentID)
	assert.Equal(t, "S1004", resp.Members[1].MemberStudentID)
}

func TestGetDetails_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.GetDetails(context.Background(), 404)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_Confirm(t *testing.T) {
	svc, repo, _, _ := newTestService()

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)
}

func TestUpdateStatus_InvalidStatusRejectedBeforeDB(t *testing.T) {
	svc, repo, _, tx := newTestService()

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "approved"})
	require.ErrorIs(t, err, ErrInvalidStatus)

	assert.Empty(t, repo.statusUpdates)
	assert.False(t, tx.rolledBack)
	assert.Equal(t, domain.StatusPending, repo.bookings[1].Status)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, repo, _, tx := newTestService()

	_, err := svc.UpdateStatus(context.Background(), 404, &models.UpdateStatusRequest{Status: "cancelled"})
	require.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, repo.statusUpdates)
	assert.True(t, tx.rolledBack)
}

func TestDelete_RemovesBookingAndMembers(t *testing.T) {
	svc, repo, members, _ := newTestService()

	err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)

	assert.NotContains(t, repo.bookings, int64(1))
	assert.Empty(t, members.members[1])
	assert.Equal(t, []int64{1}, repo.deletedIDs)
}

func TestDelete_NotFoundRollsBackMemberDeletion(t *testing.T) {
	svc, repo, members, tx := newTestService()

	// Участники заявки 1 не должны пострадать от неудачного удаления 404
	err := svc.Delete(context.Background(), 404)
	require.ErrorIs(t, err, ErrBookingNotFound)

	assert.True(t, tx.rolledBack)
	assert.Empty(t, repo.deletedIDs)
	assert.Len(t, members.members[1], 2)
}
