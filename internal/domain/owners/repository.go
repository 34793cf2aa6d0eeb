package owners

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven todos los adapters de storage cuando el id no existe.
var ErrNotFound = errors.New("owner not found")

type Repository interface {
	Create(ctx context.Context, o Owner) error
	GetByID(ctx context.Context, id string) (Owner, error)
	List(ctx context.Context) ([]Owner, error)
	Update(ctx context.Context, o Owner) error
	Delete(ctx context.Context, id string) error
}
