package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-sitting-service/internal/domain/bookings"
)

type bookingRepo struct {
	mu   sync.RWMutex
	byID map[string]bookings.Booking
}

func NewBookingRepo() bookings.Repository {
	return &bookingRepo{
		byID: make(map[string]bookings.Booking),
	}
}

func (r *bookingRepo) Create(ctx context.Context, b bookings.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(b.ID) == "" {
		return errors.New("booking id required")
	}
	if _, exists := r.byID[b.ID]; exists {
		return errors.New("booking already exists")
	}
	r.byID[b.ID] = b
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (bookings.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return bookings.Booking{}, bookings.ErrNotFound
	}
	return b, nil
}

func (r *bookingRepo) List(ctx context.Context) ([]bookings.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]bookings.Booking, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *bookingRepo) Update(ctx context.Context, b bookings.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[b.ID]; !exists {
		return bookings.ErrNotFound
	}
	r.byID[b.ID] = b
	return nil
}

func (r *bookingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return bookings.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
