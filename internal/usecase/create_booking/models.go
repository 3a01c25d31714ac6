package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID      string    // ID клиента (C001, C002, ...)
	RegistrationNo  string    // Регистрационный номер автомобиля
	ServiceCenterID string    // ID сервисного центра
	Date            time.Time // Дата записи (без времени)
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID       int64     // ID созданного бронирования
	CustomerID      string    // ID клиента
	RegistrationNo  string    // Регистрационный номер
	ServiceCenterID string    // ID сервисного центра
	Date            time.Time // Дата записи
	Status          string    // Статус бронирования (всегда confirmed)
	CreatedAt       time.Time // Время создания
}
