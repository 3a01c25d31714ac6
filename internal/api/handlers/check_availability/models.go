package check_availability

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-AppointmentService/internal/usecase/check_availability"
)

// AvailabilityRequest HTTP request model
type AvailabilityRequest struct {
	PreferredDate string `json:"preferred_date"` // "2024-06-01"
}

// AvailabilityResponse одна строка ответа: центр со свободными слотами
type AvailabilityResponse struct {
	Date              string `json:"date"`
	ServiceCenterID   string `json:"sc_id"`
	ServiceCenterName string `json:"service_center_name"`
	AvailableSlots    int    `json:"available_slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.PreferredDate)
	if err != nil {
		return nil, err
	}
	return &checkAvailability.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) []AvailabilityResponse {
	out := make([]AvailabilityResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		out = append(out, AvailabilityResponse{
			Date:              s.Date.Format(domain.DateFormat),
			ServiceCenterID:   s.ServiceCenterID,
			ServiceCenterName: s.ServiceCenterName,
			AvailableSlots:    s.AvailableSlots,
		})
	}
	return out
}
