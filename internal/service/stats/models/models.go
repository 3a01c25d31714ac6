package models

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// BookingDetail строка таблицы бронирований на сегодня
type BookingDetail struct {
	CustomerName    string
	RegistrationNo  string
	AppointmentDate string // YYYY-MM-DD
	Status          string
}

// MonthlyBreakdown агрегат одного месяца для годовой диаграммы
type MonthlyBreakdown struct {
	Month         string // Jan, Feb, ...
	Bookings      int
	Cancellations int
}

// DashboardStats полный набор показателей дашборда
type DashboardStats struct {
	DailyBookings      int
	WeeklyBookings     int
	MonthlyBookings    int
	TotalCancellations int
	TodaysBookings     []BookingDetail
	DailyBookingsChart map[string]int // дата YYYY-MM-DD -> количество
	YearlyBreakdown    []MonthlyBreakdown
}

// FromDomainDetails конвертирует строки бронирований домена в модель ответа
func FromDomainDetails(details []*domain.BookingDetail) []BookingDetail {
	out := make([]BookingDetail, 0, len(details))
	for _, d := range details {
		out = append(out, BookingDetail{
			CustomerName:    d.CustomerName,
			RegistrationNo:  d.RegistrationNo,
			AppointmentDate: d.AppointmentDate.Format(domain.DateFormat),
			Status:          string(d.Status),
		})
	}
	return out
}
