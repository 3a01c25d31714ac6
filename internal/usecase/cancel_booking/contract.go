package cancel_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// SlotRepository интерфейс леджера слотов
type SlotRepository interface {
	Increment(ctx context.Context, date time.Time, serviceCenterID string) error
}

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	FindActive(ctx context.Context, registrationNo string, date time.Time) (*domain.Booking, error)
	MarkCancelled(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
