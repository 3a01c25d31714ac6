package check_availability

import "time"

// Request модель запроса доступности слотов
type Request struct {
	Date time.Time // Желаемая дата записи
}

// Slot один доступный слот в ответе
type Slot struct {
	Date              time.Time // Дата
	ServiceCenterID   string    // ID сервисного центра
	ServiceCenterName string    // Название сервисного центра
	AvailableSlots    int       // Остаток вместимости
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time
	Slots []Slot
}
