// Package quality scores catalogue records for completeness and produces
// the report behind the medcheck command.
package quality

import (
	"context"
	"log/slog"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

type medicineRepo interface {
	List(ctx context.Context) ([]domain.Medicine, error)
}

// Service computes catalogue quality reports.
type Service struct {
	medicines medicineRepo
	log       *slog.Logger
}

// NewService creates a new Quality service.
func NewService(log *slog.Logger, medicines medicineRepo) *Service {
	return &Service{
		medicines: medicines,
		log:       log.With("service", "quality"),
	}
}
