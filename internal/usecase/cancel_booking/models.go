package cancel_booking

import "time"

// Request модель запроса на отмену бронирования
type Request struct {
	RegistrationNo string    // Регистрационный номер автомобиля
	Date           time.Time // Дата записи
}

// Response модель ответа об отменённом бронировании
type Response struct {
	BookingID       int64     // ID отменённого бронирования
	ServiceCenterID string    // Сервисный центр, которому возвращён слот
	Date            time.Time // Дата записи
}
