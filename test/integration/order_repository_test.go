package integration

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trailercraft/storefront/internal/order/domain"
	orderpg "github.com/trailercraft/storefront/internal/order/infrastructure/postgres"
	"github.com/trailercraft/storefront/pkg/logging"
)

func TestOrderRepositoryRoundTrip(t *testing.T) {
	if os.Getenv("INTEGRATION") == "" {
		t.Skip("set INTEGRATION to run container tests")
	}

	ctx := context.Background()
	env, err := Setup(ctx)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer env.Teardown(ctx)

	pool, err := pgxpool.New(ctx, env.PGURL)
	if err != nil {
		t.Fatalf("pg connect: %v", err)
	}
	defer pool.Close()

	repo := orderpg.NewRepository(logging.New(), pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	order := domain.New(domain.Order{
		FirstName:   "June",
		LastName:    "Park",
		Email:       "june@example.com",
		Phone:       "5035551234",
		Address:     "100 SE Division St",
		City:        "Portland",
		State:       "OR",
		ZipCode:     "97202",
		TruckName:   "The Workhorse 8x20",
		TruckSize:   "8x20",
		TruckImages: []string{"workhorse-front.jpg", "workhorse-side.jpg"},
		Upgrades: []domain.Upgrade{
			{ID: "generator", Name: "Onboard Generator", PriceCents: 450000},
		},
		PriceCents:    3690000,
		TotalCents:    4140000,
		PaymentMethod: "financing",
	})

	if err := repo.Save(ctx, order); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByNumber(ctx, order.Number)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Email != order.Email || got.TotalCents != order.TotalCents {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if len(got.Upgrades) != 1 || got.Upgrades[0].PriceCents != 450000 {
		t.Errorf("upgrades not preserved: %+v", got.Upgrades)
	}
	if got.Status != domain.StatusPending || got.PaymentStatus != domain.PaymentPending {
		t.Errorf("statuses = %s/%s, want pending/pending", got.Status, got.PaymentStatus)
	}

	orders, err := repo.List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 {
		t.Errorf("list = %d orders, want 1", len(orders))
	}
}
