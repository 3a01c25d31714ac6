package create_booking

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден в справочнике
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден в справочнике
	ErrVehicleNotFound = errors.New("create_booking: vehicle not found")

	// ErrSlotNotAvailable возвращается, когда вместимость слота исчерпана
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrDuplicateBooking возвращается при конфликте уникальности записи
	ErrDuplicateBooking = errors.New("create_booking: duplicate booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
