package dashboard_stats

import "github.com/m04kA/SMC-AppointmentService/internal/service/stats/models"

// BookingDetailResponse строка таблицы бронирований на сегодня
type BookingDetailResponse struct {
	CustomerName    string `json:"customer_name"`
	RegistrationNo  string `json:"registration_no"`
	AppointmentDate string `json:"appointment_date"`
	Status          string `json:"status"`
}

// MonthlyBreakdownResponse агрегат одного месяца годовой диаграммы
type MonthlyBreakdownResponse struct {
	Month         string `json:"month"`
	Bookings      int    `json:"bookings"`
	Cancellations int    `json:"cancellations"`
}

// DashboardStatsResponse HTTP response model
type DashboardStatsResponse struct {
	DailyBookings      int                        `json:"daily_bookings"`
	WeeklyBookings     int                        `json:"weekly_bookings"`
	MonthlyBookings    int                        `json:"monthly_bookings"`
	TotalCancellations int                        `json:"total_cancellations"`
	TodaysBookings     []BookingDetailResponse    `json:"todays_bookings"`
	DailyBookingsChart map[string]int             `json:"daily_bookings_chart"`
	YearlyBreakdown    []MonthlyBreakdownResponse `json:"yearly_breakdown"`
}

// FromServiceStats конвертирует показатели сервиса в HTTP response
func FromServiceStats(stats *models.DashboardStats) *DashboardStatsResponse {
	todays := make([]BookingDetailResponse, 0, len(stats.TodaysBookings))
	for _, b := range stats.TodaysBookings {
		todays = append(todays, BookingDetailResponse{
			CustomerName:    b.CustomerName,
			RegistrationNo:  b.RegistrationNo,
			AppointmentDate: b.AppointmentDate,
			Status:          b.Status,
		})
	}

	breakdown := make([]MonthlyBreakdownResponse, 0, len(stats.YearlyBreakdown))
	for _, m := range stats.YearlyBreakdown {
		breakdown = append(breakdown, MonthlyBreakdownResponse{
			Month:         m.Month,
			Bookings:      m.Bookings,
			Cancellations: m.Cancellations,
		})
	}

	return &DashboardStatsResponse{
		DailyBookings:      stats.DailyBookings,
		WeeklyBookings:     stats.WeeklyBookings,
		MonthlyBookings:    stats.MonthlyBookings,
		TotalCancellations: stats.TotalCancellations,
		TodaysBookings:     todays,
		DailyBookingsChart: stats.DailyBookingsChart,
		YearlyBreakdown:    breakdown,
	}
}
