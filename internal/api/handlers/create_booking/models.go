package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID      string `json:"customer_id"`
	RegistrationNo  string `json:"registration_no"`
	ServiceCenterID string `json:"sc_id"`
	AppointmentDate string `json:"appointment_date"` // "2024-06-01"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Message         string `json:"message"`
	BookingID       int64  `json:"booking_id"`
	CustomerID      string `json:"customer_id"`
	RegistrationNo  string `json:"registration_no"`
	ServiceCenterID string `json:"sc_id"`
	AppointmentDate string `json:"appointment_date"`
	Status          string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:      r.CustomerID,
		RegistrationNo:  r.RegistrationNo,
		ServiceCenterID: r.ServiceCenterID,
		Date:            date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Message:         "Appointment confirmed successfully!",
		BookingID:       resp.BookingID,
		CustomerID:      resp.CustomerID,
		RegistrationNo:  resp.RegistrationNo,
		ServiceCenterID: resp.ServiceCenterID,
		AppointmentDate: resp.Date.Format(domain.DateFormat),
		Status:          resp.Status,
	}
}
