package sitters

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("sitter not found")

type Repository interface {
	Create(ctx context.Context, s Sitter) error
	GetByID(ctx context.Context, id string) (Sitter, error)
	List(ctx context.Context) ([]Sitter, error)
	Update(ctx context.Context, s Sitter) error
	Delete(ctx context.Context, id string) error
}
