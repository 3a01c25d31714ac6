package directory

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// DirectoryRepository интерфейс репозитория справочника
type DirectoryRepository interface {
	GetCustomerByPhone(ctx context.Context, phoneNumber string) (*domain.Customer, error)
	ListVehicles(ctx context.Context, customerID string) ([]*domain.Vehicle, error)
	CustomerExists(ctx context.Context, customerID string) (bool, error)
	VehicleExists(ctx context.Context, registrationNo string) (bool, error)
	LastCustomerID(ctx context.Context) (string, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
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
