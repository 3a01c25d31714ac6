package cancel_booking

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	cancelBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	RegistrationNo  string `json:"registration_no"`
	AppointmentDate string `json:"appointment_date"` // "2024-06-01"
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Message string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelBookingRequest) ToUseCaseRequest() (*cancelBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	return &cancelBooking.Request{
		RegistrationNo: r.RegistrationNo,
		Date:           date,
	}, nil
}
