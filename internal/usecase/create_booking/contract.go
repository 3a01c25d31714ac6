package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// SlotRepository интерфейс леджера слотов
type SlotRepository interface {
	TryDecrement(ctx context.Context, date time.Time, serviceCenterID string) (bool, error)
}

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	CreateConfirmed(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// DirectoryService интерфейс справочника клиентов и автомобилей
// Ядро резервации использует справочник только на чтение
type DirectoryService interface {
	CustomerExists(ctx context.Context, customerID string) (bool, error)
	VehicleExists(ctx context.Context, registrationNo string) (bool, error)
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
