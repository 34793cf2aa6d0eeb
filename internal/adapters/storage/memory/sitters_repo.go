package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-sitting-service/internal/domain/sitters"
)

type sitterRepo struct {
	mu   sync.RWMutex
	byID map[string]sitters.Sitter
}

func NewSitterRepo() sitters.Repository {
	return &sitterRepo{
		byID: make(map[string]sitters.Sitter),
	}
}

func (r *sitterRepo) Create(ctx context.Context, s sitters.Sitter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("sitter id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("sitter already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *sitterRepo) GetByID(ctx context.Context, id string) (sitters.Sitter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return sitters.Sitter{}, sitters.ErrNotFound
	}
	return s, nil
}

func (r *sitterRepo) List(ctx context.Context) ([]sitters.Sitter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sitters.Sitter, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *sitterRepo) Update(ctx context.Context, s sitters.Sitter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return sitters.ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *sitterRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return sitters.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
