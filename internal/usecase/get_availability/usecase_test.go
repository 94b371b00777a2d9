package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LRB-BookingService/internal/domain"
	roomRepo "github.com/m04kA/LRB-BookingService/internal/infra/storage/room"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByRoomAndDate(_ context.Context, roomID string, date time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.RoomID == roomID && b.BookingDate.Equal(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeSlotRepo struct {
	slots []domain.TimeSlot
}

func (f *fakeSlotRepo) GetAll(_ context.Context) ([]domain.TimeSlot, error) {
	return f.slots, nil
}

type fakeRoomRepo struct {
	rooms map[string]*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id string) (*domain.Room, error) {
	if r, ok := f.rooms[id]; ok {
		return r, nil
	}
	return nil, roomRepo.ErrRoomNotFound
}

type fakeTxManager struct{}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func newTestUseCase(bookings []*domain.Booking) *UseCase {
	slots := &fakeSlotRepo{slots: []domain.TimeSlot{
		{ID: 1, StartTime: "09:00 AM", EndTime: "10:00 AM"},
		{ID: 2, StartTime: "10:00 AM", EndTime: "11:00 AM"},
		{ID: 3, StartTime: "11:00 AM", EndTime: "12:00 PM"},
	}}
	rooms := &fakeRoomRepo{rooms: map[string]*domain.Room{
		"R1": {ID: "R1", Status: domain.RoomAvailable},
	}}
	return NewUseCase(&fakeBookingRepo{bookings: bookings}, slots, rooms, fakeTxManager{}, noopLogger{})
}

func booking(roomID string, slotID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{RoomID: roomID, BookingDate: testDate, TimeSlotID: slotID, Status: status}
}

func TestExecute_EmptyDayAllSlotsAvailable(t *testing.T) {
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: "R1", Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	for _, s := range resp.Slots {
		assert.Equal(t, domain.SlotAvailable, s.Status)
		assert.Zero(t, s.PendingCount)
	}
}

func TestExecute_ConfirmedOverridesPending(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{
		booking("R1", 1, domain.StatusPending),
		booking("R1", 1, domain.StatusPending),
		booking("R1", 1, domain.StatusConfirmed),
		booking("R1", 1, domain.StatusPending),
	})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: "R1", Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotConfirmed, resp.Slots[0].Status)
	assert.Zero(t, resp.Slots[0].PendingCount)
}

func TestExecute_PendingCountIsQueueDepth(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{
		booking("R1", 2, domain.StatusPending),
		booking("R1", 2, domain.StatusPending),
		booking("R1", 2, domain.StatusCancelled),
	})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: "R1", Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotPending, resp.Slots[1].Status)
	assert.Equal(t, 2, resp.Slots[1].PendingCount)
}

func TestExecute_CancelledOnlySlotIsAvailable(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{
		booking("R1", 3, domain.StatusCancelled),
	})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: "R1", Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotAvailable, resp.Slots[2].Status)
}

func TestExecute_SlotsFollowCatalogOrder(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{
		booking("R1", 3, domain.StatusConfirmed),
		booking("R1", 1, domain.StatusPending),
	})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: "R1", Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.Equal(t, int64(1), resp.Slots[0].Slot.ID)
	assert.Equal(t, domain.SlotPending, resp.Slots[0].Status)
	assert.Equal(t, int64(2), resp.Slots[1].Slot.ID)
	assert.Equal(t, domain.SlotAvailable, resp.Slots[1].Status)
	assert.Equal(t, int64(3), resp.Slots[2].Slot.ID)
	assert.Equal(t, domain.SlotConfirmed, resp.Slots[2].Status)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{RoomID: "NOPE", Date: testDate})
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{RoomID: "", Date: testDate})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RoomID: "R1"})
	require.ErrorIs(t, err, ErrInvalidInput)
}
