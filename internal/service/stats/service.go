package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/stats/models"
)

// Service агрегатор статистики для операционного дашборда
//
// Читает историю хранилища бронирований и ничего не пишет.
// Собственных инвариантов, кроме консистентности чтения, у него нет.
type Service struct {
	bookings     BookingReader
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(bookings BookingReader, logger Logger) *Service {
	return &Service{
		bookings:     bookings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetDashboardStats собирает все показатели дашборда
func (s *Service) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	s.logger.Info("GetDashboardStats: collecting stats for %s", today.Format(domain.DateFormat))

	// Карточки: сегодня, последние 7 дней, текущий месяц
	daily, err := s.bookings.CountByStatusAndPeriod(ctx, domain.StatusConfirmed, today, today)
	if err != nil {
		return nil, s.wrap("daily count", err)
	}

	weekStart := today.AddDate(0, 0, -6)
	weekly, err := s.bookings.CountByStatusAndPeriod(ctx, domain.StatusConfirmed, weekStart, today)
	if err != nil {
		return nil, s.wrap("weekly count", err)
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	monthly, err := s.bookings.CountByStatusAndPeriod(ctx, domain.StatusConfirmed, monthStart, monthEnd)
	if err != nil {
		return nil, s.wrap("monthly count", err)
	}

	cancellations, err := s.bookings.CountByStatusAndPeriod(ctx, domain.StatusCancelled, monthStart, monthEnd)
	if err != nil {
		return nil, s.wrap("cancellations count", err)
	}

	// Таблица бронирований на сегодня
	todays, err := s.bookings.ListForDate(ctx, today)
	if err != nil {
		return nil, s.wrap("todays bookings", err)
	}

	// Линейный график по дням текущего месяца
	dailyChart, err := s.bookings.DailyConfirmedCounts(ctx, now.Year(), now.Month())
	if err != nil {
		return nil, s.wrap("daily chart", err)
	}

	// Годовая разбивка: месяцы без записей дозаполняются нулями,
	// фронтенд всегда получает 12 точек
	breakdown, err := s.bookings.MonthlyBreakdown(ctx, now.Year())
	if err != nil {
		return nil, s.wrap("yearly breakdown", err)
	}

	s.logger.Info("GetDashboardStats: daily=%d, weekly=%d, monthly=%d, cancellations=%d",
		daily, weekly, monthly, cancellations)

	return &models.DashboardStats{
		DailyBookings:      daily,
		WeeklyBookings:     weekly,
		MonthlyBookings:    monthly,
		TotalCancellations: cancellations,
		TodaysBookings:     models.FromDomainDetails(todays),
		DailyBookingsChart: dailyChart,
		YearlyBreakdown:    fillYear(breakdown),
	}, nil
}

// fillYear раскладывает разбивку по всем 12 месяцам, подставляя нули
// для месяцев без данных
func fillYear(stats []*domain.MonthlyStat) []models.MonthlyBreakdown {
	byMonth := make(map[time.Month]*domain.MonthlyStat, len(stats))
	for _, st := range stats {
		byMonth[st.Month] = st
	}

	out := make([]models.MonthlyBreakdown, 0, 12)
	for m := time.January; m <= time.December; m++ {
		entry := models.MonthlyBreakdown{Month: domain.MonthAbbreviations[int(m)-1]}
		if st, ok := byMonth[m]; ok {
			entry.Bookings = st.Bookings
			entry.Cancellations = st.Cancellations
		}
		out = append(out, entry)
	}
	return out
}

func (s *Service) wrap(step string, err error) error {
	s.logger.Error("GetDashboardStats: failed to get %s: %v", step, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, step, err)
}
