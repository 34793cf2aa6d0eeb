package owners

import (
	"context"
	"errors"
)

// Exists informa si un owner existe. Lo consumen dogs y bookings para
// validar referencias sin generar ciclos de imports entre módulos.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
