package cancel_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cancelBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/cancel_booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *cancelBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *cancelBooking.Request) (*cancelBooking.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/cancel-appointment", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{"registration_no":"KA01AB1234","appointment_date":"2024-06-01"}`

func TestHandle_Cancelled(t *testing.T) {
	uc := &fakeUseCase{resp: &cancelBooking.Response{
		BookingID:       42,
		ServiceCenterID: "SC2",
		Date:            time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CancelBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Your appointment has been successfully cancelled.", resp.Message)
}

func TestHandle_CancelErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		useCaseErr error
		wantStatus int
	}{
		{"malformed json", `{"registration_no":`, nil, http.StatusBadRequest},
		{"bad date format", `{"registration_no":"KA01AB1234","appointment_date":"June 1st"}`, nil, http.StatusBadRequest},
		{"no active booking", validBody, cancelBooking.ErrNoActiveBooking, http.StatusNotFound},
		{"invalid input", validBody, cancelBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal error", validBody, cancelBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.useCaseErr}, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
