package create_booking

import "errors"

var (
	// ErrInvalidSlot возвращается, когда слот неизвестен или деактивирован.
	// Ошибка вызывающего: определяется до открытия транзакции.
	ErrInvalidSlot = errors.New("create_booking: invalid or inactive time slot")

	// ErrNoAvailableKit возвращается, когда транзакция выполнилась,
	// но ни один набор не свободен на запрошенные дату и слот.
	// Ожидаемый исход, а не сбой: вызывающему следует предложить другой слот.
	ErrNoAvailableKit = errors.New("create_booking: no available kit for this date and slot")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidStatus возвращается, когда начальный статус не является блокирующим
	ErrInvalidStatus = errors.New("create_booking: invalid initial status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
