package directory

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден по телефону
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrNoVehicles возвращается, когда у клиента нет автомобилей в справочнике
	ErrNoVehicles = errors.New("customer has no vehicles")

	// ErrDuplicateRegistration возвращается, когда регистрационный номер
	// или телефон уже существуют в справочнике
	ErrDuplicateRegistration = errors.New("registration already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("directory service: internal error")
)
