package domain

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a car service appointment in the system
//
// Жизненный цикл: бронирование создаётся только успешной резервацией
// в статусе confirmed, переходит в cancelled не более одного раза и
// никогда не удаляется (история нужна для дашборда).
type Booking struct {
	ID              int64
	CustomerID      string
	RegistrationNo  string
	ServiceCenterID string
	AppointmentDate time.Time
	Status          BookingStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds a capacity unit
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can transition to cancelled
// cancelled - терминальный статус, из него переходов нет
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}
