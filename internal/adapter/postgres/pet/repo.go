// Package pet implements the pet repository using PostgreSQL.
// The medical_history column holds the encoded ciphertext form produced
// by the field cipher; this package never sees plaintext histories.
package pet

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vetcepi/vetcepi-backend/internal/adapter/postgres"
	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

// Repo provides pet persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new pet repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const petColumns = `id, owner_id, name, species, medical_history, created_at, updated_at`

const getByIDSQL = `
SELECT ` + petColumns + `
FROM pets
WHERE id = $1`

const listByOwnerSQL = `
SELECT ` + petColumns + `
FROM pets
WHERE owner_id = $1
ORDER BY created_at DESC`

const createSQL = `
INSERT INTO pets (id, owner_id, name, species, medical_history)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + petColumns

const deleteSQL = `
DELETE FROM pets
WHERE id = $1`

// GetByID returns a pet by primary key.
// Returns domain.ErrNotFound if no such pet exists.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)
	p, err := scanPet(row)
	if err != nil {
		return nil, mapError(err, "pet", id.String())
	}

	return p, nil
}

// ListByOwner returns all pets of one owner, newest first.
// Returns an empty slice (not nil) when the owner has no pets.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Pet, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list pets by owner: %w", err)
	}
	defer rows.Close()

	pets := []domain.Pet{}
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("list pets by owner: %w", err)
		}
		pets = append(pets, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pets by owner: %w", err)
	}

	return pets, nil
}

// Create inserts a new pet. MedicalHistory must already be in ciphertext form.
func (r *Repo) Create(ctx context.Context, p *domain.Pet) (*domain.Pet, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := querier.QueryRow(ctx, createSQL, id, p.OwnerID, p.Name, p.Species, p.MedicalHistory)
	created, err := scanPet(row)
	if err != nil {
		return nil, mapError(err, "pet", id.String())
	}

	return created, nil
}

// Update applies a partial update, bumps updated_at, and returns the
// updated pet. MedicalHistory, when set, must already be in ciphertext
// form. Returns domain.ErrNotFound if no such pet exists.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, fields domain.PetUpdateParams) (*domain.Pet, error) {
	builder := sq.Update("pets").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + petColumns).
		PlaceholderFormat(sq.Dollar)

	if fields.Name != nil {
		builder = builder.Set("name", *fields.Name)
	}
	if fields.Species != nil {
		builder = builder.Set("species", *fields.Species)
	}
	if fields.MedicalHistory != nil {
		builder = builder.Set("medical_history", *fields.MedicalHistory)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	row := querier.QueryRow(ctx, query, args...)
	updated, err := scanPet(row)
	if err != nil {
		return nil, mapError(err, "pet", id.String())
	}

	return updated, nil
}

// Delete removes a pet. Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return mapError(err, "pet", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pet %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// mapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled pass through unmapped.
func mapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, key, err)
}

// scanPet scans a single row in petColumns order.
func scanPet(row pgx.Row) (*domain.Pet, error) {
	var p domain.Pet
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Species, &p.MedicalHistory,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
