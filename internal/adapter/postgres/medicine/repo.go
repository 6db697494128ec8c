// Package medicine implements the medicine catalogue repository using
// PostgreSQL. Barcode uniqueness is enforced by a unique index on the
// barcode column; violations surface as domain.ErrAlreadyExists.
package medicine

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

// Repo provides medicine persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new medicine repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const medicineColumns = `id, barcode, name, dosage, form, species, indication, manufacturer, created_at`

const getByBarcodeSQL = `
SELECT ` + medicineColumns + `
FROM medicines
WHERE barcode = $1
LIMIT 2`

const getByIDSQL = `
SELECT ` + medicineColumns + `
FROM medicines
WHERE id = $1`

const listSQL = `
SELECT ` + medicineColumns + `
FROM medicines
ORDER BY name`

const createSQL = `
INSERT INTO medicines (id, barcode, name, dosage, form, species, indication, manufacturer)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + medicineColumns

// GetByBarcode returns the medicine with the given barcode.
// Zero rows map to domain.ErrNotFound (an expected outcome for the scan
// workflow). The query deliberately reads up to two rows: if the store's
// uniqueness guarantee has been violated, the second row is detected and
// reported as domain.ErrMultipleMatch instead of silently picking one.
func (r *Repo) GetByBarcode(ctx context.Context, barcode string) (*domain.Medicine, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByBarcodeSQL, barcode)
	if err != nil {
		return nil, fmt.Errorf("get medicine by barcode: %w", err)
	}
	defer rows.Close()

	matches, err := scanMedicines(rows)
	if err != nil {
		return nil, fmt.Errorf("get medicine by barcode: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, mapError(pgx.ErrNoRows, "medicine", barcode)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("medicine %s: %w", barcode, domain.ErrMultipleMatch)
	}
}

// GetByID returns a medicine by primary key.
// Returns domain.ErrNotFound if no such medicine exists.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Medicine, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)
	m, err := scanMedicine(row)
	if err != nil {
		return nil, mapError(err, "medicine", id.String())
	}

	return m, nil
}

// List returns the whole catalogue ordered by display name.
// Returns an empty slice (not nil) when the catalogue is empty.
func (r *Repo) List(ctx context.Context) ([]domain.Medicine, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	defer rows.Close()

	medicines, err := scanMedicines(rows)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}

	return medicines, nil
}

// Create inserts a new catalogue entry. A concurrent insert with the same
// barcode surfaces as domain.ErrAlreadyExists via the unique index.
func (r *Repo) Create(ctx context.Context, m *domain.Medicine) (*domain.Medicine, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := m.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := querier.QueryRow(ctx, createSQL,
		id, m.Barcode, m.Name, m.Dosage, m.Form, m.Species, m.Indication, m.Manufacturer,
	)
	created, err := scanMedicine(row)
	if err != nil {
		return nil, mapError(err, "medicine", m.Barcode)
	}

	return created, nil
}

// Update applies a partial update and returns the updated medicine.
// The barcode is immutable; re-labelled stock gets a new record.
// Returns domain.ErrNotFound if no such medicine exists.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, fields domain.MedicineUpdateParams) (*domain.Medicine, error) {
	builder := sq.Update("medicines").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + medicineColumns).
		PlaceholderFormat(sq.Dollar)

	changed := false
	if fields.Name != nil {
		builder = builder.Set("name", *fields.Name)
		changed = true
	}
	if fields.Dosage != nil {
		builder = builder.Set("dosage", *fields.Dosage)
		changed = true
	}
	if fields.Form != nil {
		builder = builder.Set("form", *fields.Form)
		changed = true
	}
	if fields.Species != nil {
		builder = builder.Set("species", *fields.Species)
		changed = true
	}
	if fields.Indication != nil {
		builder = builder.Set("indication", *fields.Indication)
		changed = true
	}
	if fields.Manufacturer != nil {
		builder = builder.Set("manufacturer", *fields.Manufacturer)
		changed = true
	}

	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	row := querier.QueryRow(ctx, query, args...)
	updated, err := scanMedicine(row)
	if err != nil {
		return nil, mapError(err, "medicine", id.String())
	}

	return updated, nil
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

// scanMedicine scans a single row in medicineColumns order.
func scanMedicine(row pgx.Row) (*domain.Medicine, error) {
	var m domain.Medicine
	err := row.Scan(
		&m.ID, &m.Barcode, &m.Name,
		&m.Dosage, &m.Form, &m.Species, &m.Indication, &m.Manufacturer,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// scanMedicines drains rows into a slice. Always returns a non-nil slice.
func scanMedicines(rows pgx.Rows) ([]domain.Medicine, error) {
	medicines := []domain.Medicine{}
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, err
		}
		medicines = append(medicines, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return medicines, nil
}
