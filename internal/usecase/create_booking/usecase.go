package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/slot"
)

// UseCase use case создания бронирования с аллокацией набора.
// Использует сериализуемую транзакцию: из двух конкурентных запросов
// на одни дату и слот любой данный набор достаётся максимум одному.
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	kitRepo      KitRepository
	addressRepo  AddressRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	kitRepo KitRepository,
	addressRepo AddressRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		kitRepo:      kitRepo,
		addressRepo:  addressRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, city=%s, date=%s, slot=%d",
		req.UserID, req.City, req.Date.Format(domain.DateFormat), req.TimeSlotID)

	// 1. Валидация входных данных до открытия транзакции
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 2. Начальный статус: по умолчанию awaiting_prepayment
	initialStatus := domain.StatusAwaitingPrepayment
	if req.InitialStatus != nil {
		initialStatus = *req.InitialStatus
	}
	if err := validateInitialStatus(initialStatus); err != nil {
		uc.logger.Warn("CreateBooking: initial status validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем слот до транзакции: неизвестный или деактивированный
	//    слот считается ошибкой вызывающего, транзакция не открывается
	targetSlot, err := uc.slotRepo.GetByID(ctx, req.TimeSlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CreateBooking: slot id=%d not found", req.TimeSlotID)
			return nil, ErrInvalidSlot
		}
		uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", req.TimeSlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}
	if !targetSlot.IsActive {
		uc.logger.Warn("CreateBooking: slot id=%d is inactive", req.TimeSlotID)
		return nil, ErrInvalidSlot
	}

	var result *domain.Booking
	var createdAddressID *int64

	// 4. Аллокация набора и запись бронирования в одной сериализуемой
	//    транзакции: частичное применение (адрес без бронирования)
	//    снаружи транзакции не наблюдаемо
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Активные наборы: ёмкость пула
		kitIDs, err := uc.kitRepo.ListActiveIDs(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list kits: %v", err)
			return fmt.Errorf("%w: failed to list kits: %v", ErrInternal, err)
		}
		if len(kitIDs) == 0 {
			uc.logger.Warn("CreateBooking: kit pool is empty")
			return ErrNoAvailableKit
		}

		// 4.2. Активные слоты: sort order для межсуточных сравнений
		slots, err := uc.slotRepo.ListActive(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list slots: %v", err)
			return fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
		}

		// 4.3. Блокирующие бронирования диапазона [D-1, D+1] одним запросом
		from := req.Date.AddDate(0, 0, -1)
		to := req.Date.AddDate(0, 0, 1)
		bookings, err := uc.bookingRepo.GetBlockingByDateRange(txCtx, from, to)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocking bookings: %v", err)
			return fmt.Errorf("%w: failed to get blocking bookings: %v", ErrInternal, err)
		}

		// 4.4. Множество занятых наборов и выбор свободного
		blocked := buildBlockedKits(targetSlot, req.Date, bookings, slotSortOrders(slots))

		kitID, ok := pickFreeKit(kitIDs, blocked)
		if !ok {
			uc.logger.Warn("CreateBooking: no free kit, %d/%d blocked for date=%s slot=%d",
				len(blocked), len(kitIDs), req.Date.Format(domain.DateFormat), req.TimeSlotID)
			return ErrNoAvailableKit
		}

		uc.logger.Info("CreateBooking: allocated kit=%d (%d/%d blocked)", kitID, len(blocked), len(kitIDs))

		// 4.5. Адрес доставки в той же транзакции
		if req.Address != nil {
			addr, err := uc.addressRepo.Create(txCtx, &domain.Address{
				UserID:    req.UserID,
				City:      req.Address.City,
				Street:    req.Address.Street,
				Building:  req.Address.Building,
				Apartment: req.Address.Apartment,
				Phone:     req.Address.Phone,
				Comment:   req.Address.Comment,
			})
			if err != nil {
				uc.logger.Error("CreateBooking: failed to create address: %v", err)
				return fmt.Errorf("%w: failed to create address: %v", ErrInternal, err)
			}
			createdAddressID = &addr.ID
		}

		// 4.6. Запись бронирования с назначенным набором
		booking := &domain.Booking{
			UserID:        req.UserID,
			City:          req.City,
			ServiceType:   domain.ServiceTypeKitRental,
			ScheduledDate: req.Date,
			TimeSlotID:    &targetSlot.ID,
			KitID:         &kitID,
			AddressID:     createdAddressID,
			Status:        initialStatus,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Нарушение уникальности (date, slot, kit): гонка, прошедшая
			// мимо проверки 4.4 на более слабой изоляции. Для вызывающего
			// неотличимо от отсутствия свободного набора.
			if errors.Is(err, bookingRepo.ErrKitAlreadyBooked) {
				uc.logger.Warn("CreateBooking: kit=%d lost to concurrent booking: %v", kitID, err)
				return ErrNoAvailableKit
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Serialization failure на commit эквивалентен проигранной гонке
		if bookingRepo.IsConcurrencyConflict(err) {
			uc.logger.Warn("CreateBooking: serialization conflict: %v", err)
			return nil, ErrNoAvailableKit
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, kit=%d", result.ID, *result.KitID)

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		City:          result.City,
		Date:          result.ScheduledDate,
		TimeSlotID:    *result.TimeSlotID,
		SlotStartTime: targetSlot.StartTime,
		SlotEndTime:   targetSlot.EndTime,
		KitID:         *result.KitID,
		AddressID:     result.AddressID,
		Status:        string(result.Status),
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
	}, nil
}
