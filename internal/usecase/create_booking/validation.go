package create_booking

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID == "" {
		return fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	if req.RegistrationNo == "" {
		return fmt.Errorf("%w: registrationNo is required", ErrInvalidInput)
	}

	if req.ServiceCenterID == "" {
		return fmt.Errorf("%w: serviceCenterID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
