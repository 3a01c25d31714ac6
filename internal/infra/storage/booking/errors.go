package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrAlreadyCancelled возвращается, когда бронирование уже отменено
	// (или не существует) - guard против повторного возврата вместимости
	ErrAlreadyCancelled = errors.New("booking.repository: booking already cancelled")

	// ErrDuplicateBooking возвращается при нарушении уникального ограничения
	ErrDuplicateBooking = errors.New("booking.repository: duplicate booking")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
