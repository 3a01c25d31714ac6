package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UseCase use case запроса доступных слотов на дату
// Чистое чтение леджера, состояние не меняет
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute выполняет use case запроса доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("CheckAvailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	available, err := uc.slotRepo.GetAvailable(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	slots := make([]Slot, 0, len(available))
	for _, s := range available {
		slots = append(slots, Slot{
			Date:              s.Date,
			ServiceCenterID:   s.ServiceCenterID,
			ServiceCenterName: s.ServiceCenterName,
			AvailableSlots:    s.AvailableSlots,
		})
	}

	uc.logger.Info("CheckAvailability: found %d available slots on %s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Slots: slots}, nil
}
