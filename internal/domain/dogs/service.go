package dogs

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
	OwnerID string
	Name    string
	Age     int
	Breed   string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Dog, error) {
	if strings.TrimSpace(in.OwnerID) == "" {
		return Dog{}, apierr.Validation("owner is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return Dog{}, apierr.Validation("name is required")
	}
	if in.Age < 0 {
		return Dog{}, apierr.Validation("age must be 0 or greater")
	}

	// La referencia se valida antes de escribir: nunca persiste un dog colgante.
	if err := s.checkOwner(ctx, in.OwnerID); err != nil {
		return Dog{}, err
	}

	now := s.now()
	d := Dog{
		ID:        uuid.NewString(),
		OwnerID:   strings.TrimSpace(in.OwnerID),
		Name:      strings.TrimSpace(in.Name),
		Age:       in.Age,
		Breed:     strings.TrimSpace(in.Breed),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, apierr.Store(err)
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Dog, error) {
	d, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Dog{}, apierr.NotFound("dog")
	}
	if err != nil {
		return Dog{}, apierr.Store(err)
	}
	return d, nil
}

func (s *Service) List(ctx context.Context) ([]Dog, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierr.Store(err)
	}
	return out, nil
}

type UpdateInput struct {
	OwnerID patch.Field[string]
	Name    patch.Field[string]
	Age     patch.Field[int]
	Breed   patch.Field[string]
}

func (in UpdateInput) empty() bool {
	return !in.OwnerID.Set && !in.Name.Set && !in.Age.Set && !in.Breed.Set
}

// Update fusiona el patch con el documento guardado y valida el resultado
// antes de escribir; cualquier violación rechaza el patch completo.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Dog, error) {
	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}
	if in.empty() {
		return cur, nil
	}

	if in.OwnerID.Set {
		// owner es una referencia obligatoria: no se puede limpiar con "".
		ownerID := strings.TrimSpace(in.OwnerID.Value)
		if ownerID == "" {
			return Dog{}, apierr.Validation("owner cannot be empty")
		}
		if err := s.checkOwner(ctx, ownerID); err != nil {
			return Dog{}, err
		}
		cur.OwnerID = ownerID
	}
	if in.Age.Set && in.Age.Value < 0 {
		return Dog{}, apierr.Validation("age must be 0 or greater")
	}

	cur.Name = in.Name.Or(cur.Name)
	cur.Age = in.Age.Or(cur.Age)
	cur.Breed = in.Breed.Or(cur.Breed)
	cur.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, cur); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Dog{}, apierr.NotFound("dog")
		}
		return Dog{}, apierr.Store(err)
	}
	return cur, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apierr.NotFound("dog")
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
