package bookings

import "time"

// Booking representa una reserva de cuidado hecha por un owner.
// No hay detección de solapamientos: dos bookings del mismo owner pueden coincidir en el tiempo.
type Booking struct {
	ID      string
	OwnerID string

	StartTime       time.Time
	DurationMinutes int
	Cancelled       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
