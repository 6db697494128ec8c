package medicine

import (
	"context"
	"fmt"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

// List returns the whole catalogue ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.Medicine, error) {
	medicines, err := s.medicines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}

	return medicines, nil
}
