package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pet is an owner's animal. MedicalHistory holds the plaintext form here;
// the store only ever sees the ciphertext produced by the field cipher.
type Pet struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	Species        string
	MedicalHistory string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PetUpdateParams holds partial update fields for a pet. Nil means
// "don't change". MedicalHistory carries plaintext at the service
// boundary and ciphertext at the store boundary.
type PetUpdateParams struct {
	Name           *string
	Species        *string
	MedicalHistory *string
}
