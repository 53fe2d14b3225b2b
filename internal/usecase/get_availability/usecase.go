package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// UseCase use case расчёта доступности слотов на дату.
// Read-only и консультативный: не открывает транзакцию и не блокирует строки.
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	kitRepo     KitRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	kitRepo KitRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		kitRepo:     kitRepo,
		logger:      logger,
	}
}

// Execute выполняет use case расчёта доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: city=%s, serviceType=%s, date=%s",
		req.City, req.ServiceType, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// Услуги без слотов не участвуют в расчёте доступности
	if !req.ServiceType.UsesSlots() {
		return &Response{Date: req.Date, City: req.City, Slots: []Slot{}}, nil
	}

	// Пустой или неправильно настроенный каталог дает нормальный пустой
	// результат, не ошибка
	slots, err := uc.slotRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}
	if len(slots) == 0 {
		uc.logger.Warn("GetAvailability: slot catalog is empty")
		return &Response{Date: req.Date, City: req.City, Slots: []Slot{}}, nil
	}

	kitIDs, err := uc.kitRepo.ListActiveIDs(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list kits: %v", err)
		return nil, fmt.Errorf("%w: failed to list kits: %v", ErrInternal, err)
	}

	// Блокирующие бронирования с назначенным набором только на целевую дату:
	// межсуточные удержания учитывает транзакция аллокации, здесь считается
	// занятость слотов самого дня
	bookings, err := uc.bookingRepo.GetBlockingByDateRange(ctx, req.Date, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	result := calculateAvailability(slots, bookings, len(kitIDs))

	uc.logger.Info("GetAvailability: %d slots computed for date=%s (kits=%d, bookings=%d)",
		len(result), req.Date.Format(domain.DateFormat), len(kitIDs), len(bookings))

	return &Response{
		Date:  req.Date,
		City:  req.City,
		Slots: result,
	}, nil
}
