package models

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// VehicleInfo автомобиль клиента в ответе проверки
type VehicleInfo struct {
	Make           *string
	Model          *string
	RegistrationNo string
}

// CustomerProfile профиль клиента с его автомобилями
type CustomerProfile struct {
	CustomerID string
	FullName   string
	Vehicles   []VehicleInfo
}

// RegisterRequest запрос на регистрацию нового клиента с первым автомобилем
type RegisterRequest struct {
	FullName       string
	PhoneNumber    string
	RegistrationNo string
}

// RegisterResponse результат регистрации
type RegisterResponse struct {
	CustomerID     string
	RegistrationNo string
}

// FromDomainVehicles конвертирует автомобили домена в модель ответа
func FromDomainVehicles(vehicles []*domain.Vehicle) []VehicleInfo {
	out := make([]VehicleInfo, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, VehicleInfo{
			Make:           v.Make,
			Model:          v.Model,
			RegistrationNo: v.RegistrationNo,
		})
	}
	return out
}
