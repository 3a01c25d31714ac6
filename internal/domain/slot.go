package domain

import "time"

// Slot represents the capacity ledger row for one service center on one date
//
// Инвариант: 0 <= AvailableSlots <= TotalCapacity в любой наблюдаемый момент.
// AvailableSlots уменьшается только резервацией и увеличивается только отменой.
type Slot struct {
	Date            time.Time
	ServiceCenterID string
	TotalCapacity   int
	AvailableSlots  int
}

// HasCapacity returns true if at least one unit can still be reserved
func (s *Slot) HasCapacity() bool {
	return s.AvailableSlots > 0
}

// IsSoldOut returns true if the slot has no remaining capacity
func (s *Slot) IsSoldOut() bool {
	return s.AvailableSlots <= 0
}

// Reserved returns the number of consumed capacity units
func (s *Slot) Reserved() int {
	return s.TotalCapacity - s.AvailableSlots
}

// AvailableSlot represents one row of the availability query:
// a service center that still has free capacity on the requested date
type AvailableSlot struct {
	Date              time.Time
	ServiceCenterID   string
	ServiceCenterName string
	AvailableSlots    int
}
