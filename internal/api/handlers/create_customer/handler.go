package create_customer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/directory"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgDuplicate          = "customer or vehicle already registered"
	msgCreated            = "Customer registered successfully!"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /create-customer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /create-customer - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.RegisterCustomer(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrInvalidInput):
			h.logger.Warn("POST /create-customer - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, directory.ErrDuplicateRegistration):
			h.logger.Warn("POST /create-customer - Duplicate registration: phone=%s, vehicle=%s",
				req.PhoneNumber, req.RegistrationNo)
			handlers.RespondConflict(w, msgDuplicate)

		default:
			h.logger.Error("POST /create-customer - Failed to register customer: phone=%s, error=%v",
				req.PhoneNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /create-customer - Registered customer %s with vehicle %s",
		result.CustomerID, result.RegistrationNo)

	handlers.RespondJSON(w, http.StatusCreated, &CreateCustomerResponse{
		Message:        msgCreated,
		CustomerID:     result.CustomerID,
		RegistrationNo: result.RegistrationNo,
	})
}
