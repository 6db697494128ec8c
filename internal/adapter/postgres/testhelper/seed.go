package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// uniqueBarcode returns a syntactically valid 13-digit barcode unlikely to collide.
func uniqueBarcode() string {
	digits := "0123456789"
	id := uuid.New()
	b := make([]byte, 13)
	for i := range b {
		b[i] = digits[int(id[i])%10]
	}
	return string(b)
}

// SeedOwner creates an owner row. Returns its id.
func SeedOwner(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	id := uuid.New()

	_, err := pool.Exec(ctx,
		`INSERT INTO owners (id, name, email)
		 VALUES ($1, $2, $3)`,
		id, "Test Owner "+suffix, "owner-"+suffix+"@example.com",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOwner insert owner: %v", err)
	}

	return id
}

// SeedMedicine creates a medicine with a unique barcode and all optional
// fields filled. Returns the stored domain.Medicine.
func SeedMedicine(t *testing.T, pool *pgxpool.Pool, name string) domain.Medicine {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	dosage := "50mg"
	form := "tablet"
	species := "dog"
	indication := "Indication " + suffix
	manufacturer := "Manufacturer " + suffix

	m := domain.Medicine{
		ID:           uuid.New(),
		Barcode:      uniqueBarcode(),
		Name:         name,
		Dosage:       &dosage,
		Form:         &form,
		Species:      &species,
		Indication:   &indication,
		Manufacturer: &manufacturer,
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO medicines (id, barcode, name, dosage, form, species, indication, manufacturer, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.Barcode, m.Name, m.Dosage, m.Form, m.Species, m.Indication, m.Manufacturer, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMedicine insert medicine: %v", err)
	}

	return m
}

// SeedMedicineBare creates a medicine with only the required columns set.
// Useful for quality-report tests that need incomplete records.
func SeedMedicineBare(t *testing.T, pool *pgxpool.Pool, name, barcode string) domain.Medicine {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.Medicine{
		ID:        uuid.New(),
		Barcode:   barcode,
		Name:      name,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO medicines (id, barcode, name, created_at)
		 VALUES ($1, $2, $3, $4)`,
		m.ID, m.Barcode, m.Name, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMedicineBare insert medicine: %v", err)
	}

	return m
}

// SeedPet creates a pet for the given owner. The history argument is stored
// as-is in medical_history, so pass ciphertext when the test exercises the
// read path of the pet service.
func SeedPet(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, history string) domain.Pet {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	p := domain.Pet{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Name:           "Pet " + suffix,
		Species:        "cat",
		MedicalHistory: history,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO pets (id, owner_id, name, species, medical_history, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.OwnerID, p.Name, p.Species, p.MedicalHistory, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPet insert pet: %v", err)
	}

	return p
}
