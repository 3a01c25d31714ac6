package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
)

// UseCase use case создания бронирования - протокол резервации
//
// Декремент леджера и вставка бронирования - одна неделимая операция:
// либо коммитятся обе, либо ни одной. Частичное применение (списанный
// слот без записи о бронировании) - нарушение инварианта.
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	directory   DirectoryService
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	directory DirectoryService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		directory:   directory,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, vehicle=%s, sc=%s, date=%s",
		req.CustomerID, req.RegistrationNo, req.ServiceCenterID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем идентичности в справочнике (вне транзакции - справочник
	// read-only для ядра, поэтому проверка не обязана входить в атомарную секцию)
	customerExists, err := uc.directory.CustomerExists(ctx, req.CustomerID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check customer %s: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to check customer: %v", ErrInternal, err)
	}
	if !customerExists {
		uc.logger.Warn("CreateBooking: customer %s not found", req.CustomerID)
		return nil, ErrCustomerNotFound
	}

	vehicleExists, err := uc.directory.VehicleExists(ctx, req.RegistrationNo)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check vehicle %s: %v", req.RegistrationNo, err)
		return nil, fmt.Errorf("%w: failed to check vehicle: %v", ErrInternal, err)
	}
	if !vehicleExists {
		uc.logger.Warn("CreateBooking: vehicle %s not found", req.RegistrationNo)
		return nil, ErrVehicleNotFound
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Условный декремент леджера: ровно capacity конкурентных
		// резерваций одного слота проходят, остальные видят false
		decremented, err := uc.slotRepo.TryDecrement(txCtx, req.Date, req.ServiceCenterID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to decrement slot: %v", err)
			return fmt.Errorf("%w: failed to decrement slot: %v", ErrInternal, err)
		}

		// 3.2. Вместимость исчерпана (или слота нет) - откат, записи не будет
		if !decremented {
			uc.logger.Warn("CreateBooking: no capacity for sc=%s on %s",
				req.ServiceCenterID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 3.3. Создаем бронирование; ошибка вставки откатывает и декремент
		booking := &domain.Booking{
			CustomerID:      req.CustomerID,
			RegistrationNo:  req.RegistrationNo,
			ServiceCenterID: req.ServiceCenterID,
			AppointmentDate: req.Date,
			Status:          domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.CreateConfirmed(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
				uc.logger.Warn("CreateBooking: duplicate booking for vehicle=%s date=%s",
					req.RegistrationNo, req.Date.Format(domain.DateFormat))
				return ErrDuplicateBooking
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		BookingID:       result.ID,
		CustomerID:      result.CustomerID,
		RegistrationNo:  result.RegistrationNo,
		ServiceCenterID: result.ServiceCenterID,
		Date:            result.AppointmentDate,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
	}, nil
}
