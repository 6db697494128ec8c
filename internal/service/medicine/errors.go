package medicine

import (
	"fmt"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

// DuplicateBarcodeError reports a registration attempt for a barcode that is
// already catalogued. Existing carries the record that owns the barcode so
// callers can offer it instead of the failed registration.
type DuplicateBarcodeError struct {
	Barcode  string
	Existing *domain.Medicine
}

func (e *DuplicateBarcodeError) Error() string {
	return fmt.Sprintf("barcode %s already registered as %q", e.Barcode, e.Existing.Name)
}

// Unwrap lets errors.Is(err, domain.ErrAlreadyExists) match.
func (e *DuplicateBarcodeError) Unwrap() error {
	return domain.ErrAlreadyExists
}
