package pet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

// Update applies a partial update. A new medical history is encrypted before
// the store sees it; the returned pet carries the decrypted history.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Pet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.PetUpdateParams{
		Name:    input.Name,
		Species: input.Species,
	}
	if input.MedicalHistory != nil {
		encrypted, err := s.cipher.Encrypt(*input.MedicalHistory)
		if err != nil {
			return nil, fmt.Errorf("encrypt medical history: %w", err)
		}
		params.MedicalHistory = &encrypted
	}

	updated, err := s.pets.Update(ctx, input.PetID, params)
	if err != nil {
		return nil, fmt.Errorf("update pet: %w", err)
	}

	plaintext, err := s.cipher.Decrypt(updated.MedicalHistory)
	if err != nil {
		return nil, fmt.Errorf("decrypt medical history for pet %s: %w", updated.ID, err)
	}
	updated.MedicalHistory = plaintext

	s.log.InfoContext(ctx, "pet updated",
		slog.String("pet_id", updated.ID.String()),
	)

	return updated, nil
}

// Delete removes a pet record.
func (s *Service) Delete(ctx context.Context, petID uuid.UUID) error {
	if petID == uuid.Nil {
		return domain.NewValidationError("pet_id", "required")
	}

	if err := s.pets.Delete(ctx, petID); err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}

	s.log.InfoContext(ctx, "pet deleted",
		slog.String("pet_id", petID.String()),
	)

	return nil
}
