package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

var (
	slotMorning = &domain.TimeSlot{ID: 1, SortOrder: 1, IsActive: true}
	slotDay     = &domain.TimeSlot{ID: 2, SortOrder: 2, IsActive: true}
	slotEvening = &domain.TimeSlot{ID: 3, SortOrder: 3, IsActive: true}

	testDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
)

func testSortOrders() map[int64]int {
	return slotSortOrders([]*domain.TimeSlot{slotMorning, slotDay, slotEvening})
}

func blockingBooking(date time.Time, slotID, kitID int64) *domain.Booking {
	return &domain.Booking{
		ScheduledDate: date,
		TimeSlotID:    ptr.Ptr(slotID),
		KitID:         ptr.Ptr(kitID),
		Status:        domain.StatusConfirmed,
	}
}

func TestBuildBlockedKits_SameDaySameSlot(t *testing.T) {
	bookings := []*domain.Booking{
		blockingBooking(testDate, slotDay.ID, 100),
	}

	blocked := buildBlockedKits(slotDay, testDate, bookings, testSortOrders())

	assert.Contains(t, blocked, int64(100))
}

func TestBuildBlockedKits_SameDayOtherSlotDoesNotBlock(t *testing.T) {
	bookings := []*domain.Booking{
		blockingBooking(testDate, slotMorning.ID, 100),
	}

	blocked := buildBlockedKits(slotDay, testDate, bookings, testSortOrders())

	assert.Empty(t, blocked)
}

func TestBuildBlockedKits_PreviousDay(t *testing.T) {
	// Набор взят вчера в дневном слоте: удерживается до начала
	// дневного слота сегодня
	yesterday := testDate.AddDate(0, 0, -1)
	bookings := []*domain.Booking{
		blockingBooking(yesterday, slotDay.ID, 100),
	}

	orders := testSortOrders()

	// Утро и день сегодня заблокированы, вечер свободен
	assert.Contains(t, buildBlockedKits(slotMorning, testDate, bookings, orders), int64(100))
	assert.Contains(t, buildBlockedKits(slotDay, testDate, bookings, orders), int64(100))
	assert.Empty(t, buildBlockedKits(slotEvening, testDate, bookings, orders))
}

func TestBuildBlockedKits_NextDay(t *testing.T) {
	// Набор взят завтра в дневном слоте: сегодняшняя аренда в слоте
	// с тем же или большим sort order не успеет вернуться
	tomorrow := testDate.AddDate(0, 0, 1)
	bookings := []*domain.Booking{
		blockingBooking(tomorrow, slotDay.ID, 100),
	}

	orders := testSortOrders()

	assert.Empty(t, buildBlockedKits(slotMorning, testDate, bookings, orders))
	assert.Contains(t, buildBlockedKits(slotDay, testDate, bookings, orders), int64(100))
	assert.Contains(t, buildBlockedKits(slotEvening, testDate, bookings, orders), int64(100))
}

func TestBuildBlockedKits_SingleKitCrossDayScenario(t *testing.T) {
	// Единственный набор, бронирование на дневной слот даты D:
	// утро D+1 занято, вечер D+1 свободен
	bookings := []*domain.Booking{
		blockingBooking(testDate, slotDay.ID, 100),
	}

	orders := testSortOrders()
	nextDay := testDate.AddDate(0, 0, 1)

	blockedMorning := buildBlockedKits(slotMorning, nextDay, bookings, orders)
	assert.Contains(t, blockedMorning, int64(100))

	blockedEvening := buildBlockedKits(slotEvening, nextDay, bookings, orders)
	assert.Empty(t, blockedEvening)
}

func TestBuildBlockedKits_UnknownSlotSkippedInCrossDayMath(t *testing.T) {
	// Бронирование на деактивированный слот (нет в каталоге активных)
	// не участвует в межсуточной арифметике
	yesterday := testDate.AddDate(0, 0, -1)
	bookings := []*domain.Booking{
		blockingBooking(yesterday, 99, 100),
	}

	blocked := buildBlockedKits(slotMorning, testDate, bookings, testSortOrders())

	assert.Empty(t, blocked)
}

func TestBuildBlockedKits_NilKitOrSlotIgnored(t *testing.T) {
	bookings := []*domain.Booking{
		{ScheduledDate: testDate, TimeSlotID: ptr.Ptr(slotDay.ID), KitID: nil},
		{ScheduledDate: testDate, TimeSlotID: nil, KitID: ptr.Ptr(int64(100))},
	}

	blocked := buildBlockedKits(slotDay, testDate, bookings, testSortOrders())

	assert.Empty(t, blocked)
}

func TestPickFreeKit(t *testing.T) {
	kits := []int64{1, 2, 3}

	// Какой именно свободный набор выбран, контрактом не фиксируется:
	// важно лишь, что он из пула и не заблокирован
	blocked := map[int64]struct{}{1: {}, 2: {}}
	kitID, ok := pickFreeKit(kits, blocked)
	require.True(t, ok)
	assert.Contains(t, kits, kitID)
	assert.NotContains(t, blocked, kitID)

	_, ok = pickFreeKit(kits, map[int64]struct{}{1: {}, 2: {}, 3: {}})
	assert.False(t, ok)

	kitID, ok = pickFreeKit(kits, map[int64]struct{}{})
	require.True(t, ok)
	assert.Contains(t, kits, kitID)
}

func TestDayDiff(t *testing.T) {
	assert.Equal(t, 0, dayDiff(testDate, testDate))
	assert.Equal(t, -1, dayDiff(testDate.AddDate(0, 0, -1), testDate))
	assert.Equal(t, 1, dayDiff(testDate.AddDate(0, 0, 1), testDate))

	// Разница считается по календарным дням, время внутри дня не влияет
	late := time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC)
	early := time.Date(2025, 6, 11, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, 1, dayDiff(early, late))
}
