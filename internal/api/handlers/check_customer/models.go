package check_customer

import "github.com/m04kA/SMC-AppointmentService/internal/service/directory/models"

// CheckCustomerRequest HTTP request model
type CheckCustomerRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// VehicleResponse автомобиль клиента в ответе
type VehicleResponse struct {
	Make           *string `json:"make"`
	Model          *string `json:"model"`
	RegistrationNo string  `json:"registration_no"`
}

// CheckCustomerResponse HTTP response model
type CheckCustomerResponse struct {
	Exists     bool              `json:"exists"`
	CustomerID string            `json:"customer_id,omitempty"`
	FullName   string            `json:"full_name,omitempty"`
	Vehicles   []VehicleResponse `json:"vehicles,omitempty"`
}

// FromProfile конвертирует профиль клиента в HTTP response
func FromProfile(profile *models.CustomerProfile) *CheckCustomerResponse {
	vehicles := make([]VehicleResponse, 0, len(profile.Vehicles))
	for _, v := range profile.Vehicles {
		vehicles = append(vehicles, VehicleResponse{
			Make:           v.Make,
			Model:          v.Model,
			RegistrationNo: v.RegistrationNo,
		})
	}

	return &CheckCustomerResponse{
		Exists:     true,
		CustomerID: profile.CustomerID,
		FullName:   profile.FullName,
		Vehicles:   vehicles,
	}
}
