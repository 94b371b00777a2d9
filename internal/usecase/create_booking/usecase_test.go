package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LRB-BookingService/internal/domain"
	roomRepo "github.com/m04kA/LRB-BookingService/internal/infra/storage/room"
	slotRepo "github.com/m04kA/LRB-BookingService/internal/infra/storage/timeslot"
	directoryClient "github.com/m04kA/LRB-BookingService/internal/integrations/directory"
	"github.com/m04kA/LRB-BookingService/pkg/types"
)

// --- фейки ---

type fakeBookingRepo struct {
	existing  []*domain.Booking
	created   []*domain.Booking
	createErr error
	keyErr    error
	nextID    int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	out := *b
	out.ID = f.nextID
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeBookingRepo) GetByKey(_ context.Context, roomID string, slotID int64, date time.Time) ([]*domain.Booking, error) {
	if f.keyErr != nil {
		return nil, f.keyErr
	}
	var out []*domain.Booking
	for _, b := range f.existing {
		if b.RoomID == roomID && b.TimeSlotID == slotID && b.BookingDate.Equal(date) {
			out = append(out, b)
		}
	}
	for _, b := range f.created {
		if b.RoomID == roomID && b.TimeSlotID == slotID && b.BookingDate.Equal(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeMemberRepo struct {
	batches   map[int64][]domain.BookingMember
	createErr error
}

func (f *fakeMemberRepo) CreateBatch(_ context.Context, bookingID int64, members []domain.BookingMember) ([]domain.BookingMember, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.batches == nil {
		f.batches = make(map[int64][]domain.BookingMember)
	}
	out := make([]domain.BookingMember, len(members))
	for i, m := range members {
		m.ID = int64(i + 1)
		m.BookingID = bookingID
		out[i] = m
	}
	f.batches[bookingID] = out
	return out, nil
}

type fakeSlotRepo struct {
	slots []*domain.TimeSlot
}

func (f *fakeSlotRepo) GetByStartTime(_ context.Context, start types.TimeLabel) (*domain.TimeSlot, error) {
	for _, s := range f.slots {
		if s.StartTime == start {
			return s, nil
		}
	}
	return nil, slotRepo.ErrSlotNotFound
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

type fakeDirectory struct {
	err   error
	calls []string
}

func (f *fakeDirectory) VerifyStudent(_ context.Context, studentID string) error {
	f.calls = append(f.calls, studentID)
	return f.err
}

// fakeTxManager выполняет fn без настоящей транзакции и запоминает,
// завершилась ли она откатом
type fakeTxManager struct {
	rolledBack bool
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- хелперы ---

func testFixtures() (*fakeBookingRepo, *fakeMemberRepo, *fakeSlotRepo, *fakeRoomRepo, *fakeTxManager) {
	slots := &fakeSlotRepo{slots: []*domain.TimeSlot{
		{ID: 1, StartTime: "09:00 AM", EndTime: "10:00 AM"},
		{ID: 2, StartTime: "10:00 AM", EndTime: "11:00 AM"},
	}}
	rooms := &fakeRoomRepo{rooms: map[string]*domain.Room{
		"R1": {ID: "R1", Name: "Discussion Room 1", Capacity: 8, Status: domain.RoomAvailable},
		"R9": {ID: "R9", Name: "Closed Room", Capacity: 4, Status: domain.RoomMaintenance},
	}}
	return &fakeBookingRepo{}, &fakeMemberRepo{}, slots, rooms, &fakeTxManager{}
}

func validRequest() *Request {
	return &Request{
		RoomID:    "R1",
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		TimeRange: "09:00 AM - 10:00 AM",
		Applicant: Applicant{
			Name:      "Анна Смирнова",
			StudentID: "S1001",
			Email:     "anna@example.edu",
			Phone:     "+7 900 000-00-01",
		},
		Members: []Member{
			{Name: "Пётр Иванов", StudentID: "S1002"},
			{Name: "Мария Кузнецова", StudentID: "S1003"},
		},
	}
}

// --- тесты ---

func TestExecute_FirstBookingGetsPositionOne(t *testing.T) {
	bookings, members, slots, rooms, tx := testFixtures()
	uc := NewUseCase(bookings, members, slots, rooms, nil, tx, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, "R1", resp.RoomID)
	assert.Equal(t, int64(1), resp.TimeSlotID)
	assert.Equal(t, "09:00 AM - 10:00 AM", resp.SlotLabel)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 1, resp.QueuePosition)
	assert.Equal(t, 2, resp.MembersCount)
}

func TestExecute_QueuePositionsAreSequential(t *testing.T) {
	bookings, members, slots, rooms, tx := testFixtures()
	uc := NewUseCase(bookings, members, slots, rooms, nil, tx, noopLogger{})

	for want := 1; want <= 3; want++ {
		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, want, resp.QueuePosition)
	}
}

func TestExecute_QueueCountsCancelledBookings(t *testing.T) {
	bookings, members, slots, rooms, tx := testFixtures()
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// Позиция считается по всем заявкам на ключ, статус не важен
	bookings.existing = []*domain.Booking{
		{ID: 100, RoomID: "R1", TimeSlotID: 1, BookingDate: date, Status: domain.StatusCancelled, QueuePosition: 1},
		{ID: 101, RoomID: "R1", TimeSlotID: 1, BookingDate: date, Status: domain.StatusConfirmed, QueuePosition: 2},
	}

	uc := NewUseCase(bookings, members, slots, rooms, nil, tx, noopLogger{})
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.QueuePosition)
}

func TestExecute_IndependentKeysHaveIndependentQueues(t *testing.T) {
	bookings, members, slots, rooms, tx := testFixtures()
	uc := NewUseCase(bookings, members, slots, rooms, nil, tx, noopLogger{})

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, first.QueuePosition)

	other := validRequest()
	other.TimeRange = "10:00 AM - 11:00 AM"
	second, err := uc.Execute(context.Background(), other)
	require.NoError(t, err)
	assert.Equal(t, 1, second.QueuePosition)
}

func TestExecute_MembersPersistedInRequestOrder(t *testing.T) {
	bookings, members, slots, rooms, tx := testFixtures()
	uc := NewUseCase(bookings, members, slots, rooms, nil, tx, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	got := members.batches[resp.BookingID]
	require.Len(t, got, 2)
	assert.Equal(t, "S1002", got[0].MemberStudentID)
	assert.Equal(t, "S1003", got[1].MemberStudentID)
}

func TestExecute_UnknownSlotLabel(t *testing.T) {
	bookings, members, slots, rooms, tx := testFixtures()
	uc := NewUseCase(bookings, members, slots, rooms, nil, tx, noopLogger{})

	req := validRequest()
	req.TimeRange = "07:00 AM - 08:00 AM"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotNotFound)
	assert.Empty(t, bookings.created)
	assert.Empty(t, members.batches)
}

func TestExecute_MalformedTimeRange(t *testing.T) {
	bookings, members, slots, rooms, tx := testFixtures()
	uc := NewUseCase(bookings, members, slots, rooms, nil, tx, noopLogger{})

	req := validRequest()
	req.TimeRange = "9am to 10am"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotNotFound)
	assert.Empty(t, bookings.created)
}

func TestExecute_RoomNotFound(t *testing.T) {
	bookings, members, slots, rooms, tx := testFixtures()
	uc := NewUseCase(bookings, members, slots, rooms, nil, tx, noopLogger{})

	req := validRequest()
	req.RoomID = "NOPE"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_RoomUnderMaintenance(t *testing.T) {
	bookings, members, slots, rooms, tx := testFixtures()
	uc := NewUseCase(bookings, members, slots, rooms, nil, tx, noopLogger{})

	req := validRequest()
	req.RoomID = "R9"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrRoomNotBookable)
	assert.Empty(t, bookings.created)
}

func TestExecute_MemberInsertFailureRollsBack(t *testing.T) {
	bookings, members, slots, rooms, tx := testFixtures()
	members.createErr = errors.New("insert failed")
	uc := NewUseCase(bookings, members, slots, rooms, nil, tx, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInternal)
	assert.True(t, tx.rolledBack)
}

func TestExecute_DirectoryRejectsUnknownStudent(t *testing.T) {
	bookings, members, slots, rooms, tx := testFixtures()
	dir := &fakeDirectory{err: directoryClient.ErrStudentNotFound}
	uc := NewUseCase(bookings, members, slots, rooms, dir, tx, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrStudentNotFound)
	assert.Equal(t, []string{"S1001"}, dir.calls)
	assert.Empty(t, bookings.created)
}

func TestExecute_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"empty room", func(r *Request) { r.RoomID = "  " }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty time range", func(r *Request) { r.TimeRange = "" }},
		{"empty applicant name", func(r *Request) { r.Applicant.Name = "" }},
		{"empty applicant student id", func(r *Request) { r.Applicant.StudentID = "" }},
		{"member without name", func(r *Request) { r.Members[0].Name = "" }},
		{"too many members", func(r *Request) {
			r.Members = make([]Member, domain.MaxGroupMembers+1)
			for i := range r.Members {
				r.Members[i] = Member{Name: "X", StudentID: "S"}
			}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bookings, members, slots, rooms, tx := testFixtures()
			uc := NewUseCase(bookings, members, slots, rooms, nil, tx, noopLogger{})

			req := validRequest()
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, bookings.created)
		})
	}
}

func TestExecute_NoMembersIsAllowed(t *testing.T) {
	bookings, members, slots, rooms, tx := testFixtures()
	uc := NewUseCase(bookings, members, slots, rooms, nil, tx, noopLogger{})

	req := validRequest()
	req.Members = nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.MembersCount)
	assert.Empty(t, members.batches[resp.BookingID])
}
