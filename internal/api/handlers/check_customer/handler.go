package check_customer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/directory"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgPhoneRequired      = "phone number is required"
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

// Handle POST /check-customer
//
// Неизвестный телефон и клиент без автомобилей оба отвечают exists=false:
// в обоих случаях клиенту нужна регистрация
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /check-customer - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	profile, err := h.service.CheckCustomer(r.Context(), req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrCustomerNotFound), errors.Is(err, directory.ErrNoVehicles):
			h.logger.Info("POST /check-customer - No registered customer for phone=%s", req.PhoneNumber)
			handlers.RespondJSON(w, http.StatusOK, &CheckCustomerResponse{Exists: false})

		case errors.Is(err, directory.ErrInvalidInput):
			h.logger.Warn("POST /check-customer - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgPhoneRequired)

		default:
			h.logger.Error("POST /check-customer - Failed to check customer: phone=%s, error=%v",
				req.PhoneNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /check-customer - Found customer %s", profile.CustomerID)
	handlers.RespondJSON(w, http.StatusOK, FromProfile(profile))
}
