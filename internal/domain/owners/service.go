package owners

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
	Name    string
	Email   string
	Phone   string
	Address string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Owner{}, apierr.Validation("name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return Owner{}, apierr.Validation("email is required")
	}

	now := s.now()
	o := Owner{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Owner{}, apierr.Store(err)
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Owner, error) {
	o, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Owner{}, apierr.NotFound("owner")
	}
	if err != nil {
		return Owner{}, apierr.Store(err)
	}
	return o, nil
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierr.Store(err)
	}
	return out, nil
}

// UpdateInput es un patch: solo los campos presentes en el body pisan el valor guardado.
type UpdateInput struct {
	Name    patch.Field[string]
	Email   patch.Field[string]
	Phone   patch.Field[string]
	Address patch.Field[string]
}

func (in UpdateInput) empty() bool {
	return !in.Name.Set && !in.Email.Set && !in.Phone.Set && !in.Address.Set
}

// Update aplica el patch sobre el documento guardado, todo o nada.
// Un patch sin campos es un no-op válido y devuelve el documento sin tocar.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Owner, error) {
	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}
	if in.empty() {
		return cur, nil
	}

	cur.Name = in.Name.Or(cur.Name)
	cur.Email = in.Email.Or(cur.Email)
	cur.Phone = in.Phone.Or(cur.Phone)
	cur.Address = in.Address.Or(cur.Address)
	cur.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, cur); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Owner{}, apierr.NotFound("owner")
		}
		return Owner{}, apierr.Store(err)
	}
	return cur, nil
}

// Delete borra el owner. No hay cascada: dogs/bookings que lo referencian quedan como están.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apierr.NotFound("owner")
		}
		return apierr.Store(err)
	}
	return nil
}
