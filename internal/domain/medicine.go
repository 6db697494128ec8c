package domain

import (
	"time"

	"github.com/google/uuid"
)

// Medicine is a catalogued drug/product, looked up by its scanned barcode.
// Barcode uniqueness is enforced by the store, not by this type.
type Medicine struct {
	ID           uuid.UUID
	Barcode      string
	Name         string
	Dosage       *string
	Form         *string
	Species      *string
	Indication   *string
	Manufacturer *string
	CreatedAt    time.Time
}

// MedicineUpdateParams holds partial update fields for a medicine.
// Nil means "don't change". Barcode is immutable and so has no field here.
type MedicineUpdateParams struct {
	Name         *string
	Dosage       *string
	Form         *string
	Species      *string
	Indication   *string
	Manufacturer *string
}
