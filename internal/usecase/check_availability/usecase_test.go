package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSlotRepo struct {
	slots []*domain.AvailableSlot
}

func (f *fakeSlotRepo) GetAvailable(ctx context.Context, date time.Time) ([]*domain.AvailableSlot, error) {
	return f.slots, nil
}

func TestCheckAvailability(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("returns slots with remaining capacity", func(t *testing.T) {
		repo := &fakeSlotRepo{slots: []*domain.AvailableSlot{
			{Date: date, ServiceCenterID: "SC1", ServiceCenterName: "Downtown", AvailableSlots: 3},
			{Date: date, ServiceCenterID: "SC2", ServiceCenterName: "Uptown", AvailableSlots: 1},
		}}
		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 2)
		assert.Equal(t, "SC1", resp.Slots[0].ServiceCenterID)
		assert.Equal(t, "Downtown", resp.Slots[0].ServiceCenterName)
		assert.Equal(t, 3, resp.Slots[0].AvailableSlots)
	})

	t.Run("empty result when nothing is available", func(t *testing.T) {
		uc := NewUseCase(&fakeSlotRepo{}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("zero date is rejected", func(t *testing.T) {
		uc := NewUseCase(&fakeSlotRepo{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
