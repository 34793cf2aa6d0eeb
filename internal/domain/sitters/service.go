package sitters

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
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	FirstName string
	LastName  string
	Gender    string
	Email     string
	Phone     string
	Address   string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Sitter, error) {
	if strings.TrimSpace(in.FirstName) == "" {
		return Sitter{}, apierr.Validation("firstname is required")
	}
	if strings.TrimSpace(in.LastName) == "" {
		return Sitter{}, apierr.Validation("lastname is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return Sitter{}, apierr.Validation("email is required")
	}
	gender := Gender(strings.TrimSpace(in.Gender))
	if !gender.Valid() {
		return Sitter{}, apierr.Validation("gender must be one of: male, female, other")
	}

	now := s.now()
	st := Sitter{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Gender:    gender,
		Email:     strings.TrimSpace(in.Email),
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return Sitter{}, apierr.Store(err)
	}
	return st, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Sitter, error) {
	st, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Sitter{}, apierr.NotFound("sitter")
	}
	if err != nil {
		return Sitter{}, apierr.Store(err)
	}
	return st, nil
}

func (s *Service) List(ctx context.Context) ([]Sitter, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierr.Store(err)
	}
	return out, nil
}

type UpdateInput struct {
	FirstName patch.Field[string]
	LastName  patch.Field[string]
	Gender    patch.Field[string]
	Email     patch.Field[string]
	Phone     patch.Field[string]
	Address   patch.Field[string]
}

func (in UpdateInput) empty() bool {
	return !in.FirstName.Set && !in.LastName.Set && !in.Gender.Set &&
		!in.Email.Set && !in.Phone.Set && !in.Address.Set
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Sitter, error) {
	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return Sitter{}, err
	}
	if in.empty() {
		return cur, nil
	}

	if in.Gender.Set {
		gender := Gender(strings.TrimSpace(in.Gender.Value))
		if !gender.Valid() {
			return Sitter{}, apierr.Validation("gender must be one of: male, female, other")
		}
		cur.Gender = gender
	}

	cur.FirstName = in.FirstName.Or(cur.FirstName)
	cur.LastName = in.LastName.Or(cur.LastName)
	cur.Email = in.Email.Or(cur.Email)
	cur.Phone = in.Phone.Or(cur.Phone)
	cur.Address = in.Address.Or(cur.Address)
	cur.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, cur); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Sitter{}, apierr.NotFound("sitter")
		}
		return Sitter{}, apierr.Store(err)
	}
	return cur, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apierr.NotFound("sitter")
		}
		return apierr.Store(err)
	}
	return nil
}
