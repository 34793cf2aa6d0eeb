package bookings

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-sitting-service/internal/platform/apierr"
	"pet-sitting-service/internal/platform/patch"
)

type Service struct {
	repo   Repository
	owners OwnerDirectory
	now    func() time.Time
}

func NewService(repo Repository, owners OwnerDirectory) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		now:    time.Now,
	}
}

type CreateInput struct {
	OwnerID         string
	StartTime       time.Time
	DurationMinutes int
}

// Create registra un booking nuevo. Cancelled arranca siempre en false;
// el cliente no puede crear una reserva ya cancelada.
func (s *Service) Create(ctx context.Context, in CreateInput) (Booking, error) {
	if strings.TrimSpace(in.OwnerID) == "" {
		return Booking{}, apierr.Validation("owner is required")
	}
	if in.StartTime.IsZero() {
		return Booking{}, apierr.Validation("start_time is required")
	}
	if in.DurationMinutes <= 0 {
		return Booking{}, apierr.Validation("duration_minutes must be greater than 0")
	}

	if err := s.checkOwner(ctx, in.OwnerID); err != nil {
		return Booking{}, err
	}

	now := s.now()
	b := Booking{
		ID:              uuid.NewString(),
		OwnerID:         strings.TrimSpace(in.OwnerID),
		StartTime:       in.StartTime,
		DurationMinutes: in.DurationMinutes,
		Cancelled:       false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return Booking{}, apierr.Store(err)
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Booking{}, apierr.NotFound("booking")
	}
	if err != nil {
		return Booking{}, apierr.Store(err)
	}
	return b, nil
}

func (s *Service) List(ctx context.Context) ([]Booking, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierr.Store(err)
	}
	return out, nil
}

type UpdateInput struct {
	OwnerID         patch.Field[string]
	StartTime       patch.Field[time.Time]
	DurationMinutes patch.Field[int]
	Cancelled       patch.Field[bool]
}

func (in UpdateInput) empty() bool {
	return !in.OwnerID.Set && !in.StartTime.Set && !in.DurationMinutes.Set && !in.Cancelled.Set
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Booking, error) {
	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return Booking{}, err
	}
	if in.empty() {
		return cur, nil
	}

	if in.OwnerID.Set {
		ownerID := strings.TrimSpace(in.OwnerID.Value)
		if ownerID == "" {
			return Booking{}, apierr.Validation("owner cannot be empty")
		}
		if err := s.checkOwner(ctx, ownerID); err != nil {
			return Booking{}, err
		}
		cur.OwnerID = ownerID
	}
	if in.StartTime.Set {
		if in.StartTime.Value.IsZero() {
			return Booking{}, apierr.Validation("start_time cannot be empty")
		}
		cur.StartTime = in.StartTime.Value
	}
	if in.DurationMinutes.Set && in.DurationMinutes.Value <= 0 {
		return Booking{}, apierr.Validation("duration_minutes must be greater than 0")
	}

	cur.DurationMinutes = in.DurationMinutes.Or(cur.DurationMinutes)
	cur.Cancelled = in.Cancelled.Or(cur.Cancelled)
	cur.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, cur); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Booking{}, apierr.NotFound("booking")
		}
		return Booking{}, apierr.Store(err)
	}
	return cur, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apierr.NotFound("booking")
		}
		return apierr.Store(err)
	}
	return nil
}

func (s *Service) checkOwner(ctx context.Context, ownerID string) error {
	ok, err := s.owners.Exists(ctx, ownerID)
	if err != nil {
		return apierr.Store(err)
	}
	if !ok {
		return apierr.Reference("owner", ownerID)
	}
	return nil
}
