package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	t.Run("confirmed booking is active and cancellable", func(t *testing.T) {
		b := &Booking{Status: StatusConfirmed}
		assert.True(t, b.IsActive())
		assert.False(t, b.IsCancelled())
		assert.True(t, b.CanBeCancelled())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		b := &Booking{Status: StatusCancelled}
		assert.False(t, b.IsActive())
		assert.True(t, b.IsCancelled())
		assert.False(t, b.CanBeCancelled())
	})
}

func TestSlotCapacity(t *testing.T) {
	t.Run("slot with remaining capacity", func(t *testing.T) {
		s := &Slot{TotalCapacity: 4, AvailableSlots: 1}
		assert.True(t, s.HasCapacity())
		assert.False(t, s.IsSoldOut())
		assert.Equal(t, 3, s.Reserved())
	})

	t.Run("sold out slot", func(t *testing.T) {
		s := &Slot{TotalCapacity: 4, AvailableSlots: 0}
		assert.False(t, s.HasCapacity())
		assert.True(t, s.IsSoldOut())
		assert.Equal(t, 4, s.Reserved())
	})
}
