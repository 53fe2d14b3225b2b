package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
)

const (
	msgBookingConfirmed = "Ваше бронирование №%d на %s подтверждено. Ждём вас!"
	msgBookingCancelled = "Бронирование №%d на %s отменено."
)

// Service сервис жизненного цикла бронирований.
// Владеет переходами статусов и освобождением набора при отмене;
// назначение набора принадлежит исключительно транзакции аллокации.
type Service struct {
	bookingRepo BookingRepository
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только свои бронирования.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя.
// Опционально фильтрует по статусу.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Transition переводит бронирование в новый статус по замкнутой таблице
// переходов. Недопустимый переход отклоняется до обращения к хранилищу.
// Переход в cancelled атомарно освобождает набор.
func (s *Service) Transition(ctx context.Context, bookingID int64, req *models.TransitionRequest) (*models.BookingResponse, error) {
	s.logger.Info("Transition: booking id=%d to status=%s by user=%d", bookingID, req.Status, req.UserID)

	targetStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("Transition: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Transition: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Transition: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(targetStatus) {
		s.logger.Warn("Transition: %s -> %s not permitted for booking id=%d",
			booking.Status, targetStatus, bookingID)
		return nil, ErrInvalidTransition
	}

	// Ожидаемый текущий статус передаётся в хранилище: переход применяется
	// как compare-and-swap, проигравший гонку получает конфликт
	if targetStatus == domain.StatusCancelled {
		err = s.bookingRepo.CancelAndReleaseKit(ctx, bookingID, nil, booking.Status)
	} else {
		err = s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status, targetStatus)
	}
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			s.logger.Warn("Transition: concurrent status change for booking id=%d", bookingID)
			return nil, ErrInvalidTransition
		}
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Transition: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Transition: booking id=%d moved %s -> %s", bookingID, booking.Status, targetStatus)

	booking.Status = targetStatus
	if targetStatus == domain.StatusCancelled {
		booking.KitID = nil
	}

	s.notifyTransition(ctx, booking)

	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование по запросу пользователя.
// Отдельная короткая операция: статус и kit_id меняются одним запросом,
// пересчёт доступности не требуется.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	// Повторная отмена трактуется как недопустимый переход, а не повторное
	// освобождение набора
	if !booking.CanTransitionTo(domain.StatusCancelled) {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrInvalidTransition
	}

	if err := s.bookingRepo.CancelAndReleaseKit(ctx, bookingID, req.CancellationReason, booking.Status); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			s.logger.Warn("Cancel: concurrent status change for booking id=%d", bookingID)
			return ErrInvalidTransition
		}
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)

	booking.Status = domain.StatusCancelled
	booking.KitID = nil
	s.notifyTransition(ctx, booking)

	return nil
}

// notifyTransition отправляет ровно одно уведомление о переходе
// в confirmed или cancelled. Отправка асинхронная и fire-and-forget:
// переход уже закоммичен, сбой доставки его не отменяет.
func (s *Service) notifyTransition(ctx context.Context, booking *domain.Booking) {
	var text string

	switch booking.Status {
	case domain.StatusConfirmed:
		text = fmt.Sprintf(msgBookingConfirmed, booking.ID, booking.ScheduledDate.Format(domain.DateFormat))
	case domain.StatusCancelled:
		text = fmt.Sprintf(msgBookingCancelled, booking.ID, booking.ScheduledDate.Format(domain.DateFormat))
	default:
		return
	}

	go s.notifier.Notify(context.WithoutCancel(ctx), booking.UserID, text)
}
