package get_availability

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// calculateAvailability считает доступность каждого активного слота
// на дату запроса.
//
// Слот доступен, пока число РАЗЛИЧНЫХ наборов, занятых в нём
// блокирующими бронированиями, меньше размера активного пула.
// При пустом пуле все слоты недоступны.
//
// Результат консультативный: между этим чтением и транзакцией аллокации
// могут закоммититься конкурентные бронирования, авторитетный ответ
// даёт только сама аллокация.
func calculateAvailability(
	slots []*domain.TimeSlot,
	bookings []*domain.Booking,
	totalKits int,
) []Slot {
	kitsPerSlot := countDistinctKitsPerSlot(bookings)

	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			SlotID:    s.ID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Available: totalKits > 0 && len(kitsPerSlot[s.ID]) < totalKits,
		}
	}

	return result
}

// countDistinctKitsPerSlot группирует бронирования по слоту,
// собирая множество различных наборов в каждом
func countDistinctKitsPerSlot(bookings []*domain.Booking) map[int64]map[int64]struct{} {
	kitsPerSlot := make(map[int64]map[int64]struct{})

	for _, b := range bookings {
		if b.TimeSlotID == nil || b.KitID == nil {
			continue
		}
		if kitsPerSlot[*b.TimeSlotID] == nil {
			kitsPerSlot[*b.TimeSlotID] = make(map[int64]struct{})
		}
		kitsPerSlot[*b.TimeSlotID][*b.KitID] = struct{}{}
	}

	return kitsPerSlot
}
