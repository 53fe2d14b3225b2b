package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetBlockingByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// SlotRepository интерфейс репозитория каталога слотов
type SlotRepository interface {
	ListActive(ctx context.Context) ([]*domain.TimeSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

// KitRepository интерфейс репозитория пула наборов
type KitRepository interface {
	ListActiveIDs(ctx context.Context) ([]int64, error)
}

// AddressRepository интерфейс репозитория адресов
type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) (*domain.Address, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
