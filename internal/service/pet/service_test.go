package pet

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
	"github.com/vetcepi/vetcepi-backend/internal/fieldcrypt"
)

const testHexKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockPetRepo struct {
	CreateFunc      func(ctx context.Context, p *domain.Pet) (*domain.Pet, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Pet, error)
	ListByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) ([]domain.Pet, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, params domain.PetUpdateParams) (*domain.Pet, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	createCalls int
}

func (m *mockPetRepo) Create(ctx context.Context, p *domain.Pet) (*domain.Pet, error) {
	m.createCalls++
	return m.CreateFunc(ctx, p)
}

func (m *mockPetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockPetRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Pet, error) {
	return m.ListByOwnerFunc(ctx, ownerID)
}

func (m *mockPetRepo) Update(ctx context.Context, id uuid.UUID, params domain.PetUpdateParams) (*domain.Pet, error) {
	return m.UpdateFunc(ctx, id, params)
}

func (m *mockPetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type failingCipher struct {
	err error
}

func (c *failingCipher) Encrypt(string) (string, error) { return "", c.err }
func (c *failingCipher) Decrypt(string) (string, error) { return "", c.err }

func newTestCipher(t *testing.T) *fieldcrypt.Cipher {
	t.Helper()
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := fieldcrypt.New(testHexKey, quiet)
	if err != nil {
		t.Fatalf("fieldcrypt.New: %v", err)
	}
	return c
}

func newTestService(t *testing.T, repo *mockPetRepo) *Service {
	t.Helper()
	return NewService(slog.Default(), repo, newTestCipher(t))
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestService_Create_EncryptsHistory(t *testing.T) {
	t.Parallel()

	const history = "Allergic to penicillin; surgery 2023-04-01"
	ownerID := uuid.New()

	cipher := newTestCipher(t)
	repo := &mockPetRepo{
		CreateFunc: func(ctx context.Context, p *domain.Pet) (*domain.Pet, error) {
			// The repo must only ever see ciphertext.
			assert.NotEqual(t, history, p.MedicalHistory)
			assert.NotEmpty(t, p.MedicalHistory)

			// And it must decrypt back to the original plaintext.
			plaintext, err := cipher.Decrypt(p.MedicalHistory)
			require.NoError(t, err)
			assert.Equal(t, history, plaintext)

			created := *p
			created.ID = uuid.New()
			return &created, nil
		},
	}
	svc := NewService(slog.Default(), repo, cipher)

	got, err := svc.Create(context.Background(), CreateInput{
		OwnerID:        ownerID,
		Name:           "Barsik",
		Species:        "cat",
		MedicalHistory: history,
	})
	require.NoError(t, err)
	assert.Equal(t, history, got.MedicalHistory, "caller gets plaintext back")
}

func TestService_Create_EmptyHistoryStaysEmpty(t *testing.T) {
	t.Parallel()

	repo := &mockPetRepo{
		CreateFunc: func(ctx context.Context, p *domain.Pet) (*domain.Pet, error) {
			assert.Empty(t, p.MedicalHistory)
			created := *p
			created.ID = uuid.New()
			return &created, nil
		},
	}
	svc := newTestService(t, repo)

	_, err := svc.Create(context.Background(), CreateInput{
		OwnerID: uuid.New(),
		Name:    "Rex",
		Species: "dog",
	})
	require.NoError(t, err)
}

func TestService_Create_EncryptFailureAbortsWrite(t *testing.T) {
	t.Parallel()

	cipherErr := errors.New("key unavailable")
	repo := &mockPetRepo{
		CreateFunc: func(ctx context.Context, p *domain.Pet) (*domain.Pet, error) {
			return nil, errors.New("should not be reached")
		},
	}
	svc := NewService(slog.Default(), repo, &failingCipher{err: cipherErr})

	_, err := svc.Create(context.Background(), CreateInput{
		OwnerID:        uuid.New(),
		Name:           "Rex",
		Species:        "dog",
		MedicalHistory: "secret",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, cipherErr)
	assert.Zero(t, repo.createCalls, "no record may be persisted when encryption fails")
}

func TestService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &mockPetRepo{})

	_, err := svc.Create(context.Background(), CreateInput{Name: "Rex"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

func TestService_GetByID_RoundTrip(t *testing.T) {
	t.Parallel()

	const history = "Allergic to penicillin; surgery 2023-04-01"
	petID := uuid.New()

	cipher := newTestCipher(t)
	stored, err := cipher.Encrypt(history)
	require.NoError(t, err)

	repo := &mockPetRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
			return &domain.Pet{ID: id, Name: "Barsik", MedicalHistory: stored}, nil
		},
	}
	svc := NewService(slog.Default(), repo, cipher)

	got, err := svc.GetByID(context.Background(), petID)
	require.NoError(t, err)
	assert.Equal(t, history, got.MedicalHistory)
}

func TestService_GetByID_DecryptFailureFailsRead(t *testing.T) {
	t.Parallel()

	repo := &mockPetRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
			return &domain.Pet{ID: id, MedicalHistory: "not-a-valid-ciphertext"}, nil
		},
	}
	svc := newTestService(t, repo)

	_, err := svc.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, fieldcrypt.ErrDecrypt, "corrupted ciphertext must fail the read, not surface garbled")
}

func TestService_ListByOwner_DecryptsAll(t *testing.T) {
	t.Parallel()

	cipher := newTestCipher(t)
	first, err := cipher.Encrypt("history one")
	require.NoError(t, err)
	second, err := cipher.Encrypt("history two")
	require.NoError(t, err)

	ownerID := uuid.New()
	repo := &mockPetRepo{
		ListByOwnerFunc: func(ctx context.Context, id uuid.UUID) ([]domain.Pet, error) {
			assert.Equal(t, ownerID, id)
			return []domain.Pet{
				{ID: uuid.New(), MedicalHistory: first},
				{ID: uuid.New(), MedicalHistory: second},
				{ID: uuid.New(), MedicalHistory: ""},
			}, nil
		},
	}
	svc := NewService(slog.Default(), repo, cipher)

	pets, err := svc.ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, pets, 3)
	assert.Equal(t, "history one", pets[0].MedicalHistory)
	assert.Equal(t, "history two", pets[1].MedicalHistory)
	assert.Empty(t, pets[2].MedicalHistory)
}

// ---------------------------------------------------------------------------
// Update / Delete
// ---------------------------------------------------------------------------

func TestService_Update_EncryptsNewHistory(t *testing.T) {
	t.Parallel()

	const history = "vaccinated 2026-08-01"
	petID := uuid.New()

	cipher := newTestCipher(t)
	repo := &mockPetRepo{
		UpdateFunc: func(ctx context.Context, id uuid.UUID, params domain.PetUpdateParams) (*domain.Pet, error) {
			assert.Equal(t, petID, id)
			require.NotNil(t, params.MedicalHistory)
			assert.NotEqual(t, history, *params.MedicalHistory)

			return &domain.Pet{ID: id, MedicalHistory: *params.MedicalHistory}, nil
		},
	}
	svc := NewService(slog.Default(), repo, cipher)

	newHistory := history
	got, err := svc.Update(context.Background(), UpdateInput{
		PetID:          petID,
		MedicalHistory: &newHistory,
	})
	require.NoError(t, err)
	assert.Equal(t, history, got.MedicalHistory)
}

func TestService_Update_WithoutHistoryLeavesItUntouched(t *testing.T) {
	t.Parallel()

	cipher := newTestCipher(t)
	stored, err := cipher.Encrypt("unchanged history")
	require.NoError(t, err)

	name := "Renamed"
	repo := &mockPetRepo{
		UpdateFunc: func(ctx context.Context, id uuid.UUID, params domain.PetUpdateParams) (*domain.Pet, error) {
			assert.Nil(t, params.MedicalHistory)
			require.NotNil(t, params.Name)
			return &domain.Pet{ID: id, Name: *params.Name, MedicalHistory: stored}, nil
		},
	}
	svc := NewService(slog.Default(), repo, cipher)

	got, err := svc.Update(context.Background(), UpdateInput{
		PetID: uuid.New(),
		Name:  &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "unchanged history", got.MedicalHistory)
}

func TestService_Update_NoFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &mockPetRepo{})

	_, err := svc.Update(context.Background(), UpdateInput{PetID: uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Delete(t *testing.T) {
	t.Parallel()

	petID := uuid.New()
	repo := &mockPetRepo{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			assert.Equal(t, petID, id)
			return nil
		},
	}
	svc := newTestService(t, repo)

	require.NoError(t, svc.Delete(context.Background(), petID))

	err := svc.Delete(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
