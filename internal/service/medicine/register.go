package medicine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

// Register adds an unknown product to the catalogue, typically right after a
// scan came back empty. Validation failures never reach the store. If the
// barcode is already taken, the existing record is re-queried and returned
// inside a *DuplicateBarcodeError so the caller can offer it instead.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Medicine, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	barcode := domain.NormalizeBarcode(input.Barcode)

	created, err := s.medicines.Create(ctx, &domain.Medicine{
		Barcode:      barcode,
		Name:         strings.TrimSpace(input.Name),
		Dosage:       trimOrNil(input.Dosage),
		Form:         trimOrNil(input.Form),
		Species:      trimOrNil(input.Species),
		Indication:   trimOrNil(input.Indication),
		Manufacturer: trimOrNil(input.Manufacturer),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			existing, getErr := s.medicines.GetByBarcode(ctx, barcode)
			if getErr != nil {
				return nil, fmt.Errorf("get medicine after conflict: %w", getErr)
			}
			return nil, &DuplicateBarcodeError{Barcode: barcode, Existing: existing}
		}
		return nil, fmt.Errorf("create medicine: %w", err)
	}

	s.log.InfoContext(ctx, "medicine registered",
		slog.String("medicine_id", created.ID.String()),
		slog.String("barcode", created.Barcode),
		slog.String("name", created.Name),
	)

	return created, nil
}
