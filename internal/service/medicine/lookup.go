package medicine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

// LookupByCode resolves a scanned barcode to a catalogued medicine.
// An unknown barcode returns domain.ErrNotFound; callers treat that as a
// normal outcome, not a failure. More than one record claiming the same
// barcode returns domain.ErrMultipleMatch rather than silently picking one.
func (s *Service) LookupByCode(ctx context.Context, code string) (*domain.Medicine, error) {
	normalized := domain.NormalizeBarcode(code)
	if normalized == "" {
		return nil, domain.NewValidationError("barcode", "required")
	}

	med, err := s.medicines.GetByBarcode(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if errors.Is(err, domain.ErrMultipleMatch) {
			s.log.ErrorContext(ctx, "multiple medicines share one barcode",
				slog.String("barcode", normalized),
			)
			return nil, err
		}
		return nil, fmt.Errorf("get medicine by barcode: %w", err)
	}

	return med, nil
}
