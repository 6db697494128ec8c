package medicine

import (
	"strings"

	"github.com/google/uuid"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

// RegisterInput holds the parameters for registering a new medicine.
type RegisterInput struct {
	Barcode      string
	Name         string
	Dosage       *string
	Form         *string
	Species      *string
	Indication   *string
	Manufacturer *string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if domain.NormalizeBarcode(i.Barcode) == "" {
		errs = append(errs, domain.FieldError{Field: "barcode", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for a partial medicine update.
// The barcode is immutable and cannot be changed here.
type UpdateInput struct {
	MedicineID   uuid.UUID
	Name         *string
	Dosage       *string
	Form         *string
	Species      *string
	Indication   *string
	Manufacturer *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.MedicineID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "medicine_id", Message: "required"})
	}
	if i.Name == nil && i.Dosage == nil && i.Form == nil &&
		i.Species == nil && i.Indication == nil && i.Manufacturer == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 200 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
