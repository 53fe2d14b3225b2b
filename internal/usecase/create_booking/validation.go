package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.City == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TimeSlotID <= 0 {
		return fmt.Errorf("%w: timeSlotId must be positive", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Address != nil {
		if req.Address.Street == "" || req.Address.Building == "" {
			return fmt.Errorf("%w: address street and building are required", ErrInvalidInput)
		}
		if req.Address.Phone == "" {
			return fmt.Errorf("%w: address phone is required", ErrInvalidInput)
		}
	}

	return nil
}

// validateInitialStatus проверяет, что начальный статус блокирующий:
// создать бронирование сразу в cancelled или в зарезервированном статусе нельзя
func validateInitialStatus(status domain.BookingStatus) error {
	for _, s := range domain.BlockingStatuses {
		if status == s {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
}

// validateDate проверяет, что дата не в прошлом
func validateDate(bookingDate, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
