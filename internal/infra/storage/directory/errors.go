package directory

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("directory.repository: customer not found")

	// ErrDuplicateCustomer возвращается при нарушении уникальности клиента
	// (например, повторный номер телефона)
	ErrDuplicateCustomer = errors.New("directory.repository: duplicate customer")

	// ErrDuplicateVehicle возвращается, когда регистрационный номер уже существует
	ErrDuplicateVehicle = errors.New("directory.repository: duplicate vehicle")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("directory.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("directory.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("directory.repository: failed to scan row")
)
