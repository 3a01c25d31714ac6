package create_customer

import "github.com/m04kA/SMC-AppointmentService/internal/service/directory/models"

// CreateCustomerRequest HTTP request model
type CreateCustomerRequest struct {
	FullName       string `json:"full_name"`
	PhoneNumber    string `json:"phone_number"`
	RegistrationNo string `json:"registration_no"`
}

// CreateCustomerResponse HTTP response model
type CreateCustomerResponse struct {
	Message        string `json:"message"`
	CustomerID     string `json:"customer_id"`
	RegistrationNo string `json:"registration_no"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCustomerRequest) ToServiceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		FullName:       r.FullName,
		PhoneNumber:    r.PhoneNumber,
		RegistrationNo: r.RegistrationNo,
	}
}
