package stats

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// BookingReader read-only доступ к истории бронирований
// Агрегатор дашборда ничего не мутирует и не знает о вместимости
type BookingReader interface {
	CountByStatusAndPeriod(ctx context.Context, status domain.BookingStatus, from, to time.Time) (int, error)
	ListForDate(ctx context.Context, date time.Time) ([]*domain.BookingDetail, error)
	DailyConfirmedCounts(ctx context.Context, year int, month time.Month) (map[string]int, error)
	MonthlyBreakdown(ctx context.Context, year int) ([]*domain.MonthlyStat, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
