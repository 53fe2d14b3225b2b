package booking

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrKitAlreadyBooked возвращается при нарушении уникальности
	// (scheduled_date, time_slot_id, kit_id): гонка, проскользнувшая мимо
	// проверки занятости внутри транзакции
	ErrKitAlreadyBooked = errors.New("booking.repository: kit already booked for this date and slot")

	// ErrStatusConflict возвращается, когда статус бронирования изменился
	// между чтением и обновлением: конкурентный переход выиграл гонку
	ErrStatusConflict = errors.New("booking.repository: booking status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

// Коды ошибок PostgreSQL
const (
	pqUniqueViolation      = "23505"
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
)

// IsConcurrencyConflict проверяет, что ошибка вызвана конкурентной
// транзакцией: нарушение уникальности, serialization failure или deadlock.
// Для вызывающего все три случая эквивалентны отсутствию свободного набора.
func IsConcurrencyConflict(err error) bool {
	if errors.Is(err, ErrKitAlreadyBooked) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation, pqSerializationFailure, pqDeadlockDetected:
			return true
		}
	}
	return false
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation
}
