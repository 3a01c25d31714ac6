package check_customer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/service/directory"
	"github.com/m04kA/SMC-AppointmentService/internal/service/directory/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	profile *models.CustomerProfile
	err     error
}

func (f *fakeService) CheckCustomer(ctx context.Context, phoneNumber string) (*models.CustomerProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func doRequest(t *testing.T, svc *fakeService, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/check-customer", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_KnownCustomer(t *testing.T) {
	svc := &fakeService{profile: &models.CustomerProfile{
		CustomerID: "C001",
		FullName:   "Asha Rao",
		Vehicles:   []models.VehicleInfo{{RegistrationNo: "KA01AB1234"}},
	}}

	rec := doRequest(t, svc, `{"phone_number":"9876543210"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CheckCustomerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Exists)
	assert.Equal(t, "C001", resp.CustomerID)
	require.Len(t, resp.Vehicles, 1)
	assert.Equal(t, "KA01AB1234", resp.Vehicles[0].RegistrationNo)
}

// Неизвестный телефон и клиент без автомобилей - не ошибки, а сигнал
// фронтенду начать регистрацию
func TestHandle_UnknownCustomer(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"unknown phone", directory.ErrCustomerNotFound},
		{"customer without vehicles", directory.ErrNoVehicles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeService{err: tt.err}, `{"phone_number":"1111111111"}`)

			assert.Equal(t, http.StatusOK, rec.Code)

			var resp CheckCustomerResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Exists)
			assert.Empty(t, resp.CustomerID)
		})
	}
}

func TestHandle_CheckCustomerErrors(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		rec := doRequest(t, &fakeService{}, `{"phone_number":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing phone", func(t *testing.T) {
		rec := doRequest(t, &fakeService{err: directory.ErrInvalidInput}, `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		rec := doRequest(t, &fakeService{err: directory.ErrInternal}, `{"phone_number":"9876543210"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
