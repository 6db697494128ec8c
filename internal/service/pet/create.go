package pet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

// Create stores a new pet record. The medical history is encrypted first;
// an encryption failure aborts the whole write so no record is persisted
// with a readable history.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Pet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	encrypted, err := s.cipher.Encrypt(input.MedicalHistory)
	if err != nil {
		return nil, fmt.Errorf("encrypt medical history: %w", err)
	}

	created, err := s.pets.Create(ctx, &domain.Pet{
		OwnerID:        input.OwnerID,
		Name:           strings.TrimSpace(input.Name),
		Species:        strings.TrimSpace(input.Species),
		MedicalHistory: encrypted,
	})
	if err != nil {
		return nil, fmt.Errorf("create pet: %w", err)
	}

	s.log.InfoContext(ctx, "pet created",
		slog.String("pet_id", created.ID.String()),
		slog.String("owner_id", created.OwnerID.String()),
	)

	created.MedicalHistory = input.MedicalHistory
	return created, nil
}
