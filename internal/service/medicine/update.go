package medicine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

// Update applies a partial update to a catalogue record.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Medicine, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.MedicineUpdateParams{
		Name:         trimOrNil(input.Name),
		Dosage:       input.Dosage,
		Form:         input.Form,
		Species:      input.Species,
		Indication:   input.Indication,
		Manufacturer: input.Manufacturer,
	}

	updated, err := s.medicines.Update(ctx, input.MedicineID, params)
	if err != nil {
		return nil, fmt.Errorf("update medicine: %w", err)
	}

	s.log.InfoContext(ctx, "medicine updated",
		slog.String("medicine_id", updated.ID.String()),
	)

	return updated, nil
}
