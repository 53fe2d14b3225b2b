package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetBlockingByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// SlotRepository интерфейс репозитория каталога слотов
type SlotRepository interface {
	ListActive(ctx context.Context) ([]*domain.TimeSlot, error)
}

// KitRepository интерфейс репозитория пула наборов
type KitRepository interface {
	ListActiveIDs(ctx context.Context) ([]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
