package cancel_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeLedger struct {
	increments   int
	incrementErr error
}

func (f *fakeLedger) Increment(ctx context.Context, date time.Time, serviceCenterID string) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.increments++
	return nil
}

type fakeBookings struct {
	active       *domain.Booking
	findErr      error
	markErr      error
	cancelledIDs []int64
}

func (f *fakeBookings) FindActive(ctx context.Context, registrationNo string, date time.Time) (*domain.Booking, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.active, nil
}

func (f *fakeBookings) MarkCancelled(ctx context.Context, id int64) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.cancelledIDs = append(f.cancelledIDs, id)
	return nil
}

type fakeTxManager struct {
	rollbacks int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		f.rollbacks++
		return err
	}
	return nil
}

func activeBooking() *domain.Booking {
	return &domain.Booking{
		ID:              42,
		CustomerID:      "C001",
		RegistrationNo:  "KA01AB1234",
		ServiceCenterID: "SC2",
		AppointmentDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:          domain.StatusConfirmed,
	}
}

func validRequest() *Request {
	return &Request{
		RegistrationNo: "KA01AB1234",
		Date:           time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCancelBooking_Success(t *testing.T) {
	ledger := &fakeLedger{}
	bookings := &fakeBookings{active: activeBooking()}
	uc := NewUseCase(ledger, bookings, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, "SC2", resp.ServiceCenterID)
	assert.Equal(t, []int64{42}, bookings.cancelledIDs)
	assert.Equal(t, 1, ledger.increments, "cancelled booking returns exactly one slot")
}

func TestCancelBooking_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing registration no", func(r *Request) { r.RegistrationNo = "" }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &fakeLedger{}
			uc := NewUseCase(ledger, &fakeBookings{}, &fakeTxManager{}, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, ledger.increments)
		})
	}
}

func TestCancelBooking_NoActiveBooking(t *testing.T) {
	ledger := &fakeLedger{}
	bookings := &fakeBookings{findErr: bookingRepo.ErrBookingNotFound}
	uc := NewUseCase(ledger, bookings, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoActiveBooking)
	assert.Zero(t, ledger.increments, "nothing to cancel means nothing to return")
}

// Конкурентная отмена того же бронирования: вторая попытка видит guard
// условного UPDATE и не инкрементирует леджер повторно
func TestCancelBooking_AlreadyCancelledIsIdempotent(t *testing.T) {
	ledger := &fakeLedger{}
	bookings := &fakeBookings{active: activeBooking(), markErr: bookingRepo.ErrAlreadyCancelled}
	uc := NewUseCase(ledger, bookings, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoActiveBooking)
	assert.Zero(t, ledger.increments, "second cancellation must not return a second slot")
}

func TestCancelBooking_IncrementFailureRollsBackCancellation(t *testing.T) {
	ledger := &fakeLedger{incrementErr: errors.New("connection reset")}
	bookings := &fakeBookings{active: activeBooking()}
	tx := &fakeTxManager{}
	uc := NewUseCase(ledger, bookings, tx, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, tx.rollbacks, "cancellation without slot return must not commit")
}
