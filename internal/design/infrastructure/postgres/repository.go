package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trailercraft/storefront/internal/design/domain"
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
CREATE TABLE IF NOT EXISTS build_requests (
    id                TEXT PRIMARY KEY,
    first_name        TEXT NOT NULL,
    last_name         TEXT NOT NULL,
    email             TEXT NOT NULL,
    phone_number      TEXT NOT NULL,
    zip_code          TEXT NOT NULL,
    payment_methods   TEXT NOT NULL,
    trailer_size      TEXT NOT NULL,
    range_hood        TEXT NOT NULL,
    fire_suppression  TEXT NOT NULL,
    exterior_color    TEXT NOT NULL,
    interior_finish   TEXT NOT NULL,
    budget            TEXT NOT NULL,
    need_financing    TEXT NOT NULL,
    refrigeration     TEXT[] NOT NULL DEFAULT '{}',
    equipment         JSONB NOT NULL DEFAULT '{}',
    total_price_cents BIGINT NOT NULL DEFAULT 0,
    additional_info   TEXT NOT NULL DEFAULT '',
    status            TEXT NOT NULL DEFAULT 'new',
    created_at        TIMESTAMPTZ NOT NULL,
    updated_at        TIMESTAMPTZ NOT NULL
);`)
	if err != nil {
		return fmt.Errorf("ensure build_requests schema: %w", err)
	}
	return nil
}

func (r *Repository) Save(ctx context.Context, br domain.BuildRequest) error {
	equipment, err := json.Marshal(br.Equipment)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
INSERT INTO build_requests (
    id, first_name, last_name, email, phone_number, zip_code, payment_methods,
    trailer_size, range_hood, fire_suppression, exterior_color, interior_finish,
    budget, need_financing, refrigeration, equipment, total_price_cents,
    additional_info, status, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`,
		br.ID, br.FirstName, br.LastName, br.Email, br.PhoneNumber, br.ZipCode,
		br.PaymentMethods, br.TrailerSize, br.RangeHood, br.FireSuppression,
		br.ExteriorColor, br.InteriorFinish, br.Budget, br.NeedFinancing,
		br.Refrigeration, equipment, br.TotalPriceCents, br.AdditionalInfo,
		string(br.Status), br.CreatedAt, br.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert build request %s: %w", br.ID, err)
	}
	return nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.BuildRequest, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, first_name, last_name, email, phone_number, zip_code, payment_methods,
       trailer_size, range_hood, fire_suppression, exterior_color, interior_finish,
       budget, need_financing, refrigeration, equipment, total_price_cents,
       additional_info, status, created_at, updated_at
FROM build_requests ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BuildRequest
	for rows.Next() {
		var br domain.BuildRequest
		var equipment []byte
		var status string
		if err := rows.Scan(&br.ID, &br.FirstName, &br.LastName, &br.Email,
			&br.PhoneNumber, &br.ZipCode, &br.PaymentMethods, &br.TrailerSize,
			&br.RangeHood, &br.FireSuppression, &br.ExteriorColor,
			&br.InteriorFinish, &br.Budget, &br.NeedFinancing, &br.Refrigeration,
			&equipment, &br.TotalPriceCents, &br.AdditionalInfo, &status,
			&br.CreatedAt, &br.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(equipment, &br.Equipment); err != nil {
			return nil, fmt.Errorf("decode equipment for %s: %w", br.ID, err)
		}
		br.Status = domain.Status(status)
		out = append(out, br)
	}
	return out, rows.Err()
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE build_requests SET status=$2, updated_at=$3 WHERE id=$1`,
		id, string(status), time.Now().UTC())
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("build request %s not found", id)
	}
	return nil
}
