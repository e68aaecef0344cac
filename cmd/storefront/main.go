package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/trailercraft/storefront/pkg/idempotency"
	"github.com/trailercraft/storefront/pkg/logging"
	"github.com/trailercraft/storefront/pkg/shutdown"
	"github.com/trailercraft/storefront/pkg/tracing"

	catalogapp "github.com/trailercraft/storefront/internal/catalog/application"
	cataloghttp "github.com/trailercraft/storefront/internal/catalog/infrastructure/http"
	catalogpg "github.com/trailercraft/storefront/internal/catalog/infrastructure/postgres"
	"github.com/trailercraft/storefront/internal/config"
	designapp "github.com/trailercraft/storefront/internal/design/application"
	designhttp "github.com/trailercraft/storefront/internal/design/infrastructure/http"
	designpg "github.com/trailercraft/storefront/internal/design/infrastructure/postgres"
	"github.com/trailercraft/storefront/internal/mail"
	orderapp "github.com/trailercraft/storefront/internal/order/application"
	orderhttp "github.com/trailercraft/storefront/internal/order/infrastructure/http"
	orderpg "github.com/trailercraft/storefront/internal/order/infrastructure/postgres"
)

func main() {
	log := logging.New()

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	if cfg.Tracing.Endpoint != "" {
		tp, err := tracing.Init(ctx, "storefront", cfg.Tracing.Endpoint, log)
		if err != nil {
			log.Error("otel init failed", "err", err)
			os.Exit(1)
		}
		defer func() { _ = tp.Shutdown(context.Background()) }()
	}

	// Postgres
	pool, err := pgxpool.New(ctx, cfg.DB.URL)
	if err != nil {
		log.Error("pg connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	orderRepo := orderpg.NewRepository(log, pool)
	designRepo := designpg.NewRepository(log, pool)
	truckRepo := catalogpg.NewRepository(log, pool)

	for _, ensure := range []func(context.Context) error{
		orderRepo.EnsureSchema,
		designRepo.EnsureSchema,
		truckRepo.EnsureSchema,
	} {
		if err := ensure(ctx); err != nil {
			log.Error("schema setup failed", "err", err)
			os.Exit(1)
		}
	}

	// Redis guard for double submits, enabled only when configured
	var guard *idempotency.Store
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		defer rdb.Close()
		guard = idempotency.NewStore(rdb, cfg.Redis.TTL)
	}

	mailer := mail.NewSendGrid(log, cfg.Mail.APIKey, cfg.Mail.FromName, cfg.Mail.FromAddr)

	orderSvc := orderapp.NewService(log, orderRepo, mailer, cfg.Mail.SalesAddr)
	designSvc := designapp.NewService(log, designRepo, mailer, cfg.Mail.SalesAddr)
	truckSvc := catalogapp.NewService(truckRepo)

	orderHandler := orderhttp.NewHandler(log, orderSvc)
	designHandler := designhttp.NewHandler(log, designSvc)
	truckHandler := cataloghttp.NewHandler(log, truckSvc)

	r := chi.NewRouter()
	r.Route("/api", func(api chi.Router) {
		api.Group(func(g chi.Router) {
			g.Use(idempotency.Middleware(log, guard))
			orderHandler.Register(g)
		})
		designHandler.Register(api)
		truckHandler.Register(api)

		api.Route("/admin", func(admin chi.Router) {
			orderHandler.RegisterAdmin(admin)
			designHandler.RegisterAdmin(admin)
			truckHandler.RegisterAdmin(admin)
		})
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("http listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	log.Info("storefront shutdown complete")
}
