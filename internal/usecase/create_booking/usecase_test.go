package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/slot"
)

// --- Фейки ---

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// fakeBookingStore in-memory хранилище бронирований. Воспроизводит
// поведение уникального индекса (scheduled_date, time_slot_id, kit_id)
// для блокирующих статусов.
type fakeBookingStore struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{nextID: 1}
}

func (s *fakeBookingStore) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.IsBlocking() && b.KitID != nil && b.TimeSlotID != nil {
		for _, existing := range s.bookings {
			if existing.IsBlocking() &&
				existing.KitID != nil && *existing.KitID == *b.KitID &&
				existing.TimeSlotID != nil && *existing.TimeSlotID == *b.TimeSlotID &&
				existing.ScheduledDate.Equal(b.ScheduledDate) {
				return nil, bookingRepo.ErrKitAlreadyBooked
			}
		}
	}

	stored := *b
	stored.ID = s.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.nextID++
	s.bookings = append(s.bookings, &stored)

	result := stored
	return &result, nil
}

func (s *fakeBookingStore) GetBlockingByDateRange(_ context.Context, from, to time.Time) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*domain.Booking
	for _, b := range s.bookings {
		if !b.IsBlocking() || b.KitID == nil {
			continue
		}
		if b.ScheduledDate.Before(from) || b.ScheduledDate.After(to) {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

type fakeSlotRepo struct {
	slots []*domain.TimeSlot
}

func (r *fakeSlotRepo) ListActive(_ context.Context) ([]*domain.TimeSlot, error) {
	var active []*domain.TimeSlot
	for _, s := range r.slots {
		if s.IsActive {
			active = append(active, s)
		}
	}
	return active, nil
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	for _, s := range r.slots {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, slotRepo.ErrSlotNotFound
}

type fakeKitRepo struct {
	ids []int64
}

func (r *fakeKitRepo) ListActiveIDs(_ context.Context) ([]int64, error) {
	return r.ids, nil
}

type fakeAddressRepo struct {
	mu     sync.Mutex
	nextID int64
}

func (r *fakeAddressRepo) Create(_ context.Context, a *domain.Address) (*domain.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := *a
	created.ID = r.nextID
	return &created, nil
}

// fakeTxManager сериализует транзакции глобальным мьютексом,
// имитируя изоляцию serializable для конкурентных тестов
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// --- Хелперы ---

func newTestUseCase(store *fakeBookingStore, kits []int64) *UseCase {
	slots := &fakeSlotRepo{slots: []*domain.TimeSlot{
		{ID: 1, SortOrder: 1, IsActive: true},
		{ID: 2, SortOrder: 2, IsActive: true},
		{ID: 3, SortOrder: 3, IsActive: true},
	}}

	uc := NewUseCase(
		store,
		slots,
		&fakeKitRepo{ids: kits},
		&fakeAddressRepo{},
		&fakeTxManager{},
		noopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func testRequest(date time.Time, slotID int64) *Request {
	return &Request{
		UserID:     42,
		City:       "Москва",
		Date:       date,
		TimeSlotID: slotID,
	}
}

var bookingDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

// --- Тесты ---

func TestCreateBooking_AllocatesKit(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store, []int64{100, 200})

	resp, err := uc.Execute(context.Background(), testRequest(bookingDate, 2))

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, int64(2), resp.TimeSlotID)
	assert.Contains(t, []int64{100, 200}, resp.KitID)
	assert.Equal(t, string(domain.StatusAwaitingPrepayment), resp.Status)
}

func TestCreateBooking_DistinctKitsForSameSlot(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store, []int64{100, 200})

	first, err := uc.Execute(context.Background(), testRequest(bookingDate, 2))
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), testRequest(bookingDate, 2))
	require.NoError(t, err)

	assert.NotEqual(t, first.KitID, second.KitID)

	// Пул исчерпан: третье бронирование на тот же слот отклоняется
	_, err = uc.Execute(context.Background(), testRequest(bookingDate, 2))
	assert.ErrorIs(t, err, ErrNoAvailableKit)
}

func TestCreateBooking_CrossDayHold(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store, []int64{100})

	// Единственный набор занят в дневном слоте даты D
	_, err := uc.Execute(context.Background(), testRequest(bookingDate, 2))
	require.NoError(t, err)

	nextDay := bookingDate.AddDate(0, 0, 1)

	// Утренний слот D+1 начинается до возврата набора
	_, err = uc.Execute(context.Background(), testRequest(nextDay, 1))
	assert.ErrorIs(t, err, ErrNoAvailableKit)

	// Вечерний слот D+1 начинается после возврата
	resp, err := uc.Execute(context.Background(), testRequest(nextDay, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.KitID)
}

func TestCreateBooking_EmptyKitPool(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store, nil)

	_, err := uc.Execute(context.Background(), testRequest(bookingDate, 1))

	assert.ErrorIs(t, err, ErrNoAvailableKit)
}

func TestCreateBooking_UnknownSlot(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store, []int64{100})

	_, err := uc.Execute(context.Background(), testRequest(bookingDate, 99))

	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestCreateBooking_InactiveSlot(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store, []int64{100})
	uc.slotRepo = &fakeSlotRepo{slots: []*domain.TimeSlot{
		{ID: 1, SortOrder: 1, IsActive: false},
	}}

	_, err := uc.Execute(context.Background(), testRequest(bookingDate, 1))

	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestCreateBooking_PastDate(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store, []int64{100})

	past := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), testRequest(past, 1))

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateBooking_InitialStatusMustBeBlocking(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store, []int64{100})

	req := testRequest(bookingDate, 1)
	cancelled := domain.StatusCancelled
	req.InitialStatus = &cancelled

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	req.InitialStatus = ptrStatus(domain.StatusInProgress)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCreateBooking_ExplicitInitialStatus(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store, []int64{100})

	req := testRequest(bookingDate, 1)
	req.InitialStatus = ptrStatus(domain.StatusNew)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusNew), resp.Status)
}

func TestCreateBooking_WithAddress(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store, []int64{100})

	req := testRequest(bookingDate, 1)
	req.Address = &AddressPayload{
		City:     "Москва",
		Street:   "Тверская",
		Building: "1",
		Phone:    "+79990001122",
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.AddressID)
	assert.Positive(t, *resp.AddressID)
}

func TestCreateBooking_ConcurrentRequestsSingleKit(t *testing.T) {
	store := newFakeBookingStore()
	uc := newTestUseCase(store, []int64{100})

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), testRequest(bookingDate, 2))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrNoAvailableKit)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one booking must win the kit")
}

func ptrStatus(s domain.BookingStatus) *domain.BookingStatus {
	return &s
}
