package domain

import "time"

// BookingDetail строка таблицы "бронирования на сегодня" для дашборда
type BookingDetail struct {
	CustomerName    string
	RegistrationNo  string
	AppointmentDate time.Time
	Status          BookingStatus
}

// MonthlyStat агрегат бронирований и отмен за один месяц года
type MonthlyStat struct {
	Month         time.Month
	Bookings      int
	Cancellations int
}
