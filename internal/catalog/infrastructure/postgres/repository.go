package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trailercraft/storefront/internal/catalog/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS trucks (
    id                     TEXT PRIMARY KEY,
    name                   TEXT NOT NULL,
    slug                   TEXT NOT NULL UNIQUE,
    size                   TEXT NOT NULL,
    type                   TEXT NOT NULL DEFAULT '',
    description            TEXT NOT NULL DEFAULT '',
    price_cents            BIGINT,
    monthly_estimate_cents BIGINT,
    images                 TEXT[] NOT NULL DEFAULT '{}',
    features               JSONB NOT NULL DEFAULT '{}',
    options                JSONB NOT NULL DEFAULT '[]',
    available              BOOLEAN NOT NULL DEFAULT TRUE,
    created_at             TIMESTAMPTZ NOT NULL,
    updated_at             TIMESTAMPTZ NOT NULL
);`)
	if err != nil {
		return fmt.Errorf("ensure trucks schema: %w", err)
	}
	return nil
}

const truckColumns = `id, name, slug, size, type, description, price_cents,
monthly_estimate_cents, images, features, options, available, created_at, updated_at`

func (r *Repository) Save(ctx context.Context, t domain.Truck) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO trucks (`+truckColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		t.ID, t.Name, t.Slug, t.Size, t.Type, t.Description, t.PriceCents,
		t.MonthlyEstimateCents, t.Images, rawOr(t.Features, "{}"),
		rawOr(t.Options, "[]"), t.Available, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert truck %s: %w", t.ID, err)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, t domain.Truck) error {
	ct, err := r.pool.Exec(ctx, `
UPDATE trucks SET name=$2, slug=$3, size=$4, type=$5, description=$6,
    price_cents=$7, monthly_estimate_cents=$8, images=$9, features=$10,
    options=$11, available=$12, updated_at=$13
WHERE id=$1`,
		t.ID, t.Name, t.Slug, t.Size, t.Type, t.Description, t.PriceCents,
		t.MonthlyEstimateCents, t.Images, rawOr(t.Features, "{}"),
		rawOr(t.Options, "[]"), t.Available, t.UpdatedAt)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (domain.Truck, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+truckColumns+` FROM trucks WHERE id=$1`, id)
	return scanTruck(row)
}

func (r *Repository) List(ctx context.Context, availableOnly bool) ([]domain.Truck, error) {
	q := `SELECT ` + truckColumns + ` FROM trucks`
	if availableOnly {
		q += ` WHERE available`
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Truck
	for rows.Next() {
		t, err := scanTruck(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM trucks WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTruck(row rowScanner) (domain.Truck, error) {
	var t domain.Truck
	var features, options []byte
	err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.Size, &t.Type, &t.Description,
		&t.PriceCents, &t.MonthlyEstimateCents, &t.Images, &features, &options,
		&t.Available, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Truck{}, err
	}
	t.Features = features
	t.Options = options
	return t, nil
}

func rawOr(raw []byte, def string) []byte {
	if len(raw) == 0 {
		return []byte(def)
	}
	return raw
}
