package create_booking

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

	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/book-appointment", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{"customer_id":"C001","registration_no":"KA01AB1234","sc_id":"SC1","appointment_date":"2024-06-01"}`

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		BookingID:       7,
		CustomerID:      "C001",
		RegistrationNo:  "KA01AB1234",
		ServiceCenterID: "SC1",
		Date:            time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:          "confirmed",
	}}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "C001", uc.gotReq.CustomerID)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), uc.gotReq.Date)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.BookingID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "2024-06-01", resp.AppointmentDate)
	assert.Equal(t, "Appointment confirmed successfully!", resp.Message)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		useCaseErr error
		wantStatus int
	}{
		{"malformed json", `{"customer_id":`, nil, http.StatusBadRequest},
		{"bad date format", `{"customer_id":"C001","registration_no":"KA01AB1234","sc_id":"SC1","appointment_date":"01-06-2024"}`, nil, http.StatusBadRequest},
		{"slot not available", validBody, createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{"unknown customer", validBody, createBooking.ErrCustomerNotFound, http.StatusNotFound},
		{"unknown vehicle", validBody, createBooking.ErrVehicleNotFound, http.StatusNotFound},
		{"duplicate booking", validBody, createBooking.ErrDuplicateBooking, http.StatusConflict},
		{"invalid input", validBody, createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal error", validBody, createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.useCaseErr}, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
