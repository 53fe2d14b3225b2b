package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) GetBlockingByDateRange(_ context.Context, _, _ time.Time) ([]*domain.Booking, error) {
	return r.bookings, nil
}

type fakeSlotRepo struct {
	slots []*domain.TimeSlot
}

func (r *fakeSlotRepo) ListActive(_ context.Context) ([]*domain.TimeSlot, error) {
	return r.slots, nil
}

type fakeKitRepo struct {
	ids []int64
}

func (r *fakeKitRepo) ListActiveIDs(_ context.Context) ([]int64, error) {
	return r.ids, nil
}

var testDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func testSlots() []*domain.TimeSlot {
	return []*domain.TimeSlot{
		{ID: 1, SortOrder: 1, IsActive: true},
		{ID: 2, SortOrder: 2, IsActive: true},
		{ID: 3, SortOrder: 3, IsActive: true},
	}
}

func booked(slotID, kitID int64) *domain.Booking {
	return &domain.Booking{
		ScheduledDate: testDate,
		TimeSlotID:    ptr.Ptr(slotID),
		KitID:         ptr.Ptr(kitID),
		Status:        domain.StatusConfirmed,
	}
}

func newTestUseCase(bookings []*domain.Booking, slots []*domain.TimeSlot, kits []int64) *UseCase {
	return NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeSlotRepo{slots: slots},
		&fakeKitRepo{ids: kits},
		noopLogger{},
	)
}

func testRequest() *Request {
	return &Request{
		City:        "Москва",
		ServiceType: domain.ServiceTypeKitRental,
		Date:        testDate,
	}
}

func TestGetAvailability_AllSlotsFree(t *testing.T) {
	uc := newTestUseCase(nil, testSlots(), []int64{100, 200})

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	for _, s := range resp.Slots {
		assert.True(t, s.Available)
	}
}

func TestGetAvailability_SlotFullWhenAllKitsTaken(t *testing.T) {
	bookings := []*domain.Booking{
		booked(2, 100),
		booked(2, 200),
	}
	uc := newTestUseCase(bookings, testSlots(), []int64{100, 200})

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	assert.True(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)
	assert.True(t, resp.Slots[2].Available)
}

func TestGetAvailability_PartiallyBookedSlotStaysAvailable(t *testing.T) {
	bookings := []*domain.Booking{
		booked(2, 100),
	}
	uc := newTestUseCase(bookings, testSlots(), []int64{100, 200})

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	assert.True(t, resp.Slots[1].Available)
}

func TestGetAvailability_DuplicateKitCountedOnce(t *testing.T) {
	// Один и тот же набор в слоте считается один раз:
	// доступность определяют различные наборы
	bookings := []*domain.Booking{
		booked(2, 100),
		booked(2, 100),
	}
	uc := newTestUseCase(bookings, testSlots(), []int64{100, 200})

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	assert.True(t, resp.Slots[1].Available)
}

func TestGetAvailability_EmptyKitPool(t *testing.T) {
	uc := newTestUseCase(nil, testSlots(), nil)

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	for _, s := range resp.Slots {
		assert.False(t, s.Available)
	}
}

func TestGetAvailability_EmptySlotCatalog(t *testing.T) {
	uc := newTestUseCase(nil, nil, []int64{100})

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestGetAvailability_NonSlotServiceType(t *testing.T) {
	uc := newTestUseCase(nil, testSlots(), []int64{100})

	req := testRequest()
	req.ServiceType = domain.ServiceType("consultation")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestGetAvailability_Validation(t *testing.T) {
	uc := newTestUseCase(nil, testSlots(), []int64{100})

	req := testRequest()
	req.City = ""
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = testRequest()
	req.Date = time.Time{}
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
