package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trailercraft/storefront/internal/order/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

// EnsureSchema creates the orders table if missing.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS orders (
    number          TEXT PRIMARY KEY,
    first_name      TEXT NOT NULL,
    last_name       TEXT NOT NULL,
    email           TEXT NOT NULL,
    phone           TEXT NOT NULL,
    address         TEXT NOT NULL,
    city            TEXT NOT NULL,
    state           TEXT NOT NULL,
    zip_code        TEXT NOT NULL,
    truck_name      TEXT NOT NULL,
    truck_size      TEXT NOT NULL,
    truck_type      TEXT NOT NULL DEFAULT '',
    truck_image     TEXT NOT NULL,
    truck_images    TEXT[] NOT NULL DEFAULT '{}',
    upgrades        JSONB NOT NULL DEFAULT '[]',
    price_cents     BIGINT NOT NULL,
    total_cents     BIGINT NOT NULL,
    payment_method  TEXT NOT NULL,
    payment_status  TEXT NOT NULL DEFAULT 'pending',
    status          TEXT NOT NULL DEFAULT 'pending',
    created_at      TIMESTAMPTZ NOT NULL,
    updated_at      TIMESTAMPTZ NOT NULL
);`)
	if err != nil {
		return fmt.Errorf("ensure orders schema: %w", err)
	}
	return nil
}

type upgradeRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

func (r *Repository) Save(ctx context.Context, o domain.Order) error {
	upgrades := make([]upgradeRow, 0, len(o.Upgrades))
	for _, u := range o.Upgrades {
		upgrades = append(upgrades, upgradeRow(u))
	}
	payload, err := json.Marshal(upgrades)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
INSERT INTO orders (
    number, first_name, last_name, email, phone, address, city, state, zip_code,
    truck_name, truck_size, truck_type, truck_image, truck_images, upgrades,
    price_cents, total_cents, payment_method, payment_status, status,
    created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)`,
		o.Number, o.FirstName, o.LastName, o.Email, o.Phone, o.Address, o.City,
		o.State, o.ZipCode, o.TruckName, o.TruckSize, o.TruckType, o.TruckImage,
		o.TruckImages, payload, o.PriceCents, o.TotalCents, o.PaymentMethod,
		string(o.PaymentStatus), string(o.Status), o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order %s: %w", o.Number, err)
	}
	return nil
}

func (r *Repository) GetByNumber(ctx context.Context, number string) (domain.Order, error) {
	row := r.pool.QueryRow(ctx, `
SELECT number, first_name, last_name, email, phone, address, city, state, zip_code,
       truck_name, truck_size, truck_type, truck_image, truck_images, upgrades,
       price_cents, total_cents, payment_method, payment_status, status,
       created_at, updated_at
FROM orders WHERE number=$1`, number)
	return scanOrder(row)
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
SELECT number, first_name, last_name, email, phone, address, city, state, zip_code,
       truck_name, truck_size, truck_type, truck_image, truck_images, upgrades,
       price_cents, total_cents, payment_method, payment_status, status,
       created_at, updated_at
FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var o domain.Order
	var payload []byte
	var payStatus, status string
	err := row.Scan(&o.Number, &o.FirstName, &o.LastName, &o.Email, &o.Phone,
		&o.Address, &o.City, &o.State, &o.ZipCode, &o.TruckName, &o.TruckSize,
		&o.TruckType, &o.TruckImage, &o.TruckImages, &payload, &o.PriceCents,
		&o.TotalCents, &o.PaymentMethod, &payStatus, &status, &o.CreatedAt,
		&o.UpdatedAt)
	if err != nil {
		return domain.Order{}, err
	}

	var upgrades []upgradeRow
	if err := json.Unmarshal(payload, &upgrades); err != nil {
		return domain.Order{}, fmt.Errorf("decode upgrades for %s: %w", o.Number, err)
	}
	o.Upgrades = make([]domain.Upgrade, 0, len(upgrades))
	for _, u := range upgrades {
		o.Upgrades = append(o.Upgrades, domain.Upgrade(u))
	}

	o.PaymentStatus = domain.PaymentStatus(payStatus)
	o.Status = domain.Status(status)
	return o, nil
}
