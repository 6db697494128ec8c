// Package pet implements pet record operations. Medical histories are
// encrypted with the field cipher before every write and decrypted after
// every read; the store never sees plaintext.
package pet

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

type petRepo interface {
	Create(ctx context.Context, p *domain.Pet) (*domain.Pet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Pet, error)
	Update(ctx context.Context, id uuid.UUID, params domain.PetUpdateParams) (*domain.Pet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type fieldCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// Service provides pet record operations.
type Service struct {
	pets   petRepo
	cipher fieldCipher
	log    *slog.Logger
}

// NewService creates a new Pet service.
func NewService(log *slog.Logger, pets petRepo, cipher fieldCipher) *Service {
	return &Service{
		pets:   pets,
		cipher: cipher,
		log:    log.With("service", "pet"),
	}
}
