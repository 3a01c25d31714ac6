package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	cancelBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/cancel_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid appointment date, expected YYYY-MM-DD"
	msgNoActiveBooking    = "no active booking found for this registration number and date"
	msgCancelled          = "Your appointment has been successfully cancelled."
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /cancel-appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cancel-appointment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /cancel-appointment - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrNoActiveBooking):
			h.logger.Warn("POST /cancel-appointment - No active booking: registration_no=%s, date=%s",
				req.RegistrationNo, req.AppointmentDate)
			handlers.RespondNotFound(w, msgNoActiveBooking)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("POST /cancel-appointment - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /cancel-appointment - Failed to cancel booking: registration_no=%s, error=%v",
				req.RegistrationNo, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cancel-appointment - Booking cancelled successfully: booking_id=%d, registration_no=%s",
		result.BookingID, req.RegistrationNo)
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{Message: msgCancelled})
}
