package bookings

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error
	CancelAndReleaseKit(ctx context.Context, id int64, reason *string, from domain.BookingStatus) error
}

// Notifier внешний канал уведомлений.
// Контракт fire-and-forget: возвращаемого значения нет, сбой доставки
// никогда не откатывает переход статуса.
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
