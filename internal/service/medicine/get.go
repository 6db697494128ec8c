package medicine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

// Get returns a single medicine by ID.
func (s *Service) Get(ctx context.Context, medicineID uuid.UUID) (*domain.Medicine, error) {
	if medicineID == uuid.Nil {
		return nil, domain.NewValidationError("medicine_id", "required")
	}

	med, err := s.medicines.GetByID(ctx, medicineID)
	if err != nil {
		return nil, fmt.Errorf("get medicine: %w", err)
	}

	return med, nil
}
