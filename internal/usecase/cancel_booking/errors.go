package cancel_booking

import "errors"

var (
	// ErrNoActiveBooking возвращается, когда активное бронирование не найдено
	// или уже отменено - безвредный сигнал "нечего отменять", не сбой данных
	ErrNoActiveBooking = errors.New("cancel_booking: no active booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
