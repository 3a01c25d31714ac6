package create_booking

import (
	"context"
	"errors"
	"sync"
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

// fakeLedger леджер в памяти с тем же контрактом условного декремента,
// что и у SQL реализации
type fakeLedger struct {
	mu        sync.Mutex
	available int
	calls     int
	err       error
}

func (f *fakeLedger) TryDecrement(ctx context.Context, date time.Time, serviceCenterID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	if f.available <= 0 {
		return false, nil
	}
	f.available--
	return true, nil
}

type fakeBookings struct {
	mu      sync.Mutex
	nextID  int64
	created []*domain.Booking
	err     error
}

func (f *fakeBookings) CreateConfirmed(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.created = append(f.created, &created)
	return &created, nil
}

type fakeDirectory struct {
	customers map[string]bool
	vehicles  map[string]bool
}

func (f *fakeDirectory) CustomerExists(ctx context.Context, customerID string) (bool, error) {
	return f.customers[customerID], nil
}

func (f *fakeDirectory) VehicleExists(ctx context.Context, registrationNo string) (bool, error) {
	return f.vehicles[registrationNo], nil
}

// fakeTxManager прогоняет функцию без настоящей транзакции; при ошибке
// фиксирует, что был бы откат
type fakeTxManager struct {
	mu        sync.Mutex
	rollbacks int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err != nil {
		f.mu.Lock()
		f.rollbacks++
		f.mu.Unlock()
	}
	return err
}

func newTestUseCase(ledger *fakeLedger, bookings *fakeBookings, directory *fakeDirectory, tx *fakeTxManager) *UseCase {
	return NewUseCase(ledger, bookings, directory, tx, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		CustomerID:      "C001",
		RegistrationNo:  "KA01AB1234",
		ServiceCenterID: "SC1",
		Date:            time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateBooking_Success(t *testing.T) {
	ledger := &fakeLedger{available: 3}
	bookings := &fakeBookings{}
	directory := &fakeDirectory{
		customers: map[string]bool{"C001": true},
		vehicles:  map[string]bool{"KA01AB1234": true},
	}
	uc := newTestUseCase(ledger, bookings, directory, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, "C001", resp.CustomerID)
	assert.Equal(t, "SC1", resp.ServiceCenterID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 2, ledger.available)
	require.Len(t, bookings.created, 1)
	assert.Equal(t, domain.StatusConfirmed, bookings.created[0].Status)
}

func TestCreateBooking_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing customer id", func(r *Request) { r.CustomerID = "" }},
		{"missing registration no", func(r *Request) { r.RegistrationNo = "" }},
		{"missing service center id", func(r *Request) { r.ServiceCenterID = "" }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &fakeLedger{available: 1}
			uc := newTestUseCase(ledger, &fakeBookings{}, &fakeDirectory{}, &fakeTxManager{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, ledger.calls, "ledger must not be touched on invalid input")
		})
	}
}

func TestCreateBooking_UnknownIdentities(t *testing.T) {
	directory := &fakeDirectory{
		customers: map[string]bool{"C001": true},
		vehicles:  map[string]bool{"KA01AB1234": true},
	}

	t.Run("unknown customer", func(t *testing.T) {
		ledger := &fakeLedger{available: 1}
		uc := newTestUseCase(ledger, &fakeBookings{}, directory, &fakeTxManager{})

		req := validRequest()
		req.CustomerID = "C999"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
		assert.Zero(t, ledger.calls)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		ledger := &fakeLedger{available: 1}
		uc := newTestUseCase(ledger, &fakeBookings{}, directory, &fakeTxManager{})

		req := validRequest()
		req.RegistrationNo = "XX00XX0000"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrVehicleNotFound)
		assert.Zero(t, ledger.calls)
	})
}

func TestCreateBooking_SlotNotAvailable(t *testing.T) {
	ledger := &fakeLedger{available: 0}
	bookings := &fakeBookings{}
	directory := &fakeDirectory{
		customers: map[string]bool{"C001": true},
		vehicles:  map[string]bool{"KA01AB1234": true},
	}
	tx := &fakeTxManager{}
	uc := newTestUseCase(ledger, bookings, directory, tx)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, bookings.created, "no booking row without a reserved slot")
	assert.Equal(t, 1, tx.rollbacks)
}

func TestCreateBooking_DuplicateRollsBackDecrement(t *testing.T) {
	ledger := &fakeLedger{available: 1}
	bookings := &fakeBookings{err: bookingRepo.ErrDuplicateBooking}
	directory := &fakeDirectory{
		customers: map[string]bool{"C001": true},
		vehicles:  map[string]bool{"KA01AB1234": true},
	}
	tx := &fakeTxManager{}
	uc := newTestUseCase(ledger, bookings, directory, tx)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicateBooking)
	assert.Equal(t, 1, tx.rollbacks, "failed insert must roll the decrement back")
}

func TestCreateBooking_LedgerFailure(t *testing.T) {
	ledger := &fakeLedger{available: 1, err: errors.New("connection reset")}
	bookings := &fakeBookings{}
	directory := &fakeDirectory{
		customers: map[string]bool{"C001": true},
		vehicles:  map[string]bool{"KA01AB1234": true},
	}
	uc := newTestUseCase(ledger, bookings, directory, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, bookings.created)
}

// Ровно capacity конкурентных резерваций одного слота должны пройти,
// остальные получают отказ без записи
func TestCreateBooking_ConcurrentReservationsRespectCapacity(t *testing.T) {
	const (
		capacity = 1
		racers   = 2
	)

	ledger := &fakeLedger{available: capacity}
	bookings := &fakeBookings{}
	directory := &fakeDirectory{
		customers: map[string]bool{"C001": true},
		vehicles:  map[string]bool{"KA01AB1234": true, "KA02CD5678": true},
	}
	uc := newTestUseCase(ledger, bookings, directory, &fakeTxManager{})

	regs := []string{"KA01AB1234", "KA02CD5678"}
	errs := make([]error, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.RegistrationNo = regs[i]
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var succeeded, refused int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotNotAvailable):
			refused++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, racers-capacity, refused)
	assert.Equal(t, 0, ledger.available)
	assert.Len(t, bookings.created, capacity)
}
