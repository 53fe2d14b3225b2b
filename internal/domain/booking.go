package domain

import "time"

// BookingStatus статус бронирования.
// Замкнутое множество значений: внешние строковые представления
// конвертируются на границе API, внутри ядра хранится только enum.
type BookingStatus string

const (
	StatusNew                BookingStatus = "new"
	StatusAwaitingPrepayment BookingStatus = "awaiting_prepayment"
	StatusPrepaid            BookingStatus = "prepaid"
	StatusConfirmed          BookingStatus = "confirmed"
	StatusCancelled          BookingStatus = "cancelled"

	// Зарезервированные статусы: видны в админке, но ядро их не назначает.
	// Переходы в них не определены до уточнения продуктовых требований.
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
)

// transitions допустимые переходы статусов.
// confirmed и cancelled терминальные: из них переходов нет.
var transitions = map[BookingStatus][]BookingStatus{
	StatusNew:                {StatusAwaitingPrepayment, StatusCancelled},
	StatusAwaitingPrepayment: {StatusPrepaid, StatusCancelled},
	StatusPrepaid:            {StatusConfirmed, StatusCancelled},
	StatusConfirmed:          {},
	StatusCancelled:          {},
}

// ServiceType тип услуги
type ServiceType string

const (
	// ServiceTypeKitRental прокат набора: бронируется конкретный слот и набор
	ServiceTypeKitRental ServiceType = "kit_rental"
)

// UsesSlots возвращает true, если услуга бронируется по временным слотам
func (s ServiceType) UsesSlots() bool {
	return s == ServiceTypeKitRental
}

// Booking бронирование набора на дату и слот
type Booking struct {
	ID            int64
	UserID        int64 // Telegram ID пользователя, он же адресат уведомлений
	City          string
	ServiceType   ServiceType
	ScheduledDate time.Time // Дата бронирования без времени, время задаёт слот
	TimeSlotID    *int64    // NULL для услуг без слотов
	KitID         *int64    // Назначается аллокацией, обнуляется только отменой
	AddressID     *int64
	Status        BookingStatus
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking возвращает true, если бронирование удерживает набор
// и учитывается при расчёте доступности
func (b *Booking) IsBlocking() bool {
	for _, s := range BlockingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// IsCancelled возвращает true, если бронирование отменено
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanTransitionTo проверяет допустимость перехода в target из текущего статуса
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range transitions[b.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsValidStatus проверяет, что строка является известным статусом
// (включая зарезервированные)
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusNew, StatusAwaitingPrepayment, StatusPrepaid, StatusConfirmed,
		StatusCancelled, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}
