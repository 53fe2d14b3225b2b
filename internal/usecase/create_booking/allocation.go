package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Набор, взятый в слоте S на дату D, удерживается с начала слота S
// в день D до начала слота S в день D+1: скользящее 24-часовое окно,
// привязанное к позиции слота, а не к wall-clock часам. Поэтому занятость
// проверяется по трём датам: D-1, D и D+1.

// buildBlockedKits строит множество наборов, недоступных для слота target
// на дату date, по блокирующим бронированиям диапазона [D-1, D+1].
//
// Набор заблокирован, если:
//   - он уже занят ровно в этом слоте в этот же день;
//   - он занят вчера в слоте S' с sortOrder(S') >= sortOrder(target):
//     вчерашняя поздняя аренда ещё не вернулась к раннему слоту сегодня;
//   - он занят завтра в слоте S'' с sortOrder(S'') <= sortOrder(target):
//     сегодняшняя поздняя выдача не успеет вернуться к завтрашней ранней.
//
// Бронирование, ссылающееся на слот вне каталога активных (деактивированный
// слот), не даёт sort order и в межсуточной арифметике пропускается;
// одновременную коллизию в том же дне и слоте всё равно ловит уникальный
// индекс хранилища.
func buildBlockedKits(
	target *domain.TimeSlot,
	date time.Time,
	bookings []*domain.Booking,
	sortOrders map[int64]int,
) map[int64]struct{} {
	blocked := make(map[int64]struct{})

	for _, b := range bookings {
		if b.KitID == nil || b.TimeSlotID == nil {
			continue
		}

		switch dayDiff(b.ScheduledDate, date) {
		case 0:
			if *b.TimeSlotID == target.ID {
				blocked[*b.KitID] = struct{}{}
			}
		case -1:
			order, ok := sortOrders[*b.TimeSlotID]
			if ok && target.SortOrder <= order {
				blocked[*b.KitID] = struct{}{}
			}
		case 1:
			order, ok := sortOrders[*b.TimeSlotID]
			if ok && target.SortOrder >= order {
				blocked[*b.KitID] = struct{}{}
			}
		}
	}

	return blocked
}

// pickFreeKit выбирает первый незаблокированный набор.
// Политика выбора среди свободных намеренно произвольная: порядок
// определяется порядком выдачи пула, ротации нет.
func pickFreeKit(kitIDs []int64, blocked map[int64]struct{}) (int64, bool) {
	for _, id := range kitIDs {
		if _, isBlocked := blocked[id]; !isBlocked {
			return id, true
		}
	}
	return 0, false
}

// slotSortOrders строит отображение ID слота -> sort_order
func slotSortOrders(slots []*domain.TimeSlot) map[int64]int {
	orders := make(map[int64]int, len(slots))
	for _, s := range slots {
		orders[s.ID] = s.SortOrder
	}
	return orders
}

// dayDiff разница в календарных днях между date и base (date - base)
func dayDiff(date, base time.Time) int {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(b).Hours() / 24)
}
