package dogs

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("dog not found")

type Repository interface {
	Create(ctx context.Context, d Dog) error
	GetByID(ctx context.Context, id string) (Dog, error)
	List(ctx context.Context) ([]Dog, error)
	Update(ctx context.Context, d Dog) error
	Delete(ctx context.Context, id string) error
}

// OwnerDirectory resuelve referencias a owners sin importar el módulo owners.
type OwnerDirectory interface {
	Exists(ctx context.Context, ownerID string) (bool, error)
}
