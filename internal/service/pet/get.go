package pet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

// GetByID returns a pet with its medical history decrypted. A decryption
// failure fails the read; corrupted ciphertext must never surface as
// garbled text in a medical record.
func (s *Service) GetByID(ctx context.Context, petID uuid.UUID) (*domain.Pet, error) {
	if petID == uuid.Nil {
		return nil, domain.NewValidationError("pet_id", "required")
	}

	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return nil, fmt.Errorf("get pet: %w", err)
	}

	plaintext, err := s.cipher.Decrypt(p.MedicalHistory)
	if err != nil {
		return nil, fmt.Errorf("decrypt medical history for pet %s: %w", petID, err)
	}
	p.MedicalHistory = plaintext

	return p, nil
}

// ListByOwner returns the owner's pets, newest first, histories decrypted.
// One undecryptable record fails the whole listing.
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Pet, error) {
	if ownerID == uuid.Nil {
		return nil, domain.NewValidationError("owner_id", "required")
	}

	pets, err := s.pets.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}

	for i := range pets {
		plaintext, err := s.cipher.Decrypt(pets[i].MedicalHistory)
		if err != nil {
			return nil, fmt.Errorf("decrypt medical history for pet %s: %w", pets[i].ID, err)
		}
		pets[i].MedicalHistory = plaintext
	}

	return pets, nil
}
