package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
)

// UseCase use case отмены бронирования - протокол возврата слота
//
// Перевод в cancelled и инкремент леджера коммитятся вместе или никак:
// бронирование, помеченное отменённым без возврата слота, - тихая утечка
// вместимости, а не допустимый деградированный режим.
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: vehicle=%s, date=%s",
		req.RegistrationNo, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Ищем активное бронирование (строка блокируется FOR UPDATE)
		booking, err := uc.bookingRepo.FindActive(txCtx, req.RegistrationNo, req.Date)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: no active booking for vehicle=%s date=%s",
					req.RegistrationNo, req.Date.Format(domain.DateFormat))
				return ErrNoActiveBooking
			}
			uc.logger.Error("CancelBooking: failed to find booking: %v", err)
			return fmt.Errorf("%w: failed to find booking: %v", ErrInternal, err)
		}

		// 2.2. Условный перевод в cancelled - guard идемпотентности:
		// гоняющаяся отмена уже удовлетворила намерение вызывающего,
		// повторного инкремента не будет
		if err := uc.bookingRepo.MarkCancelled(txCtx, booking.ID); err != nil {
			if errors.Is(err, bookingRepo.ErrAlreadyCancelled) {
				uc.logger.Warn("CancelBooking: booking id=%d already cancelled by concurrent request", booking.ID)
				return ErrNoActiveBooking
			}
			uc.logger.Error("CancelBooking: failed to mark cancelled: %v", err)
			return fmt.Errorf("%w: failed to mark cancelled: %v", ErrInternal, err)
		}

		// 2.3. Возвращаем единицу вместимости; ошибка откатывает и отмену
		if err := uc.slotRepo.Increment(txCtx, booking.AppointmentDate, booking.ServiceCenterID); err != nil {
			uc.logger.Error("CancelBooking: failed to increment slot: %v", err)
			return fmt.Errorf("%w: failed to increment slot: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: successfully cancelled booking id=%d, slot returned to sc=%s",
		result.ID, result.ServiceCenterID)

	return &Response{
		BookingID:       result.ID,
		ServiceCenterID: result.ServiceCenterID,
		Date:            result.AppointmentDate,
	}, nil
}
