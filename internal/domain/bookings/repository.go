package bookings

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("booking not found")

type Repository interface {
	Create(ctx context.Context, b Booking) error
	GetByID(ctx context.Context, id string) (Booking, error)
	List(ctx context.Context) ([]Booking, error)
	Update(ctx context.Context, b Booking) error
	Delete(ctx context.Context, id string) error
}

// OwnerDirectory resuelve referencias a owners sin importar el módulo owners.
type OwnerDirectory interface {
	Exists(ctx context.Context, ownerID string) (bool, error)
}
