// Package medicine implements the medicine catalogue operations:
// barcode lookup, registration of unknown products, and record upkeep.
package medicine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

type medicineRepo interface {
	GetByBarcode(ctx context.Context, barcode string) (*domain.Medicine, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Medicine, error)
	List(ctx context.Context) ([]domain.Medicine, error)
	Create(ctx context.Context, m *domain.Medicine) (*domain.Medicine, error)
	Update(ctx context.Context, id uuid.UUID, params domain.MedicineUpdateParams) (*domain.Medicine, error)
}

// Service provides medicine catalogue operations.
type Service struct {
	medicines medicineRepo
	log       *slog.Logger
}

// NewService creates a new Medicine service.
func NewService(log *slog.Logger, medicines medicineRepo) *Service {
	return &Service{
		medicines: medicines,
		log:       log.With("service", "medicine"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
