package pet

import (
	"strings"

	"github.com/google/uuid"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

// CreateInput holds the parameters for creating a pet record.
type CreateInput struct {
	OwnerID        uuid.UUID
	Name           string
	Species        string
	MedicalHistory string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.OwnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(i.Species) == "" {
		errs = append(errs, domain.FieldError{Field: "species", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for a partial pet update.
type UpdateInput struct {
	PetID          uuid.UUID
	Name           *string
	Species        *string
	MedicalHistory *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.PetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "pet_id", Message: "required"})
	}
	if i.Name == nil && i.Species == nil && i.MedicalHistory == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Species != nil && strings.TrimSpace(*i.Species) == "" {
		errs = append(errs, domain.FieldError{Field: "species", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
