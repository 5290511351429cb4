package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/talegen/bastille/internal/api"
	"github.com/talegen/bastille/internal/core/ports"
	"github.com/talegen/bastille/internal/core/service"
	"github.com/talegen/bastille/internal/infrastructure/cache"
	"github.com/talegen/bastille/internal/infrastructure/cache/memory"
	"github.com/talegen/bastille/internal/infrastructure/db/mongo"
	"github.com/talegen/bastille/internal/infrastructure/db/postgres"
	"github.com/talegen/bastille/internal/infrastructure/db/redis"
	"github.com/talegen/bastille/internal/infrastructure/http/handlers"
	"github.com/talegen/bastille/internal/infrastructure/queue"
	"github.com/talegen/bastille/internal/pkg/config"
	"github.com/talegen/bastille/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "bastille",
		Env:     cfg.Env,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("bastille exited with error")
	}
	log.Info().Msg("bastille stopped cleanly")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Stores ---
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:          cfg.Postgres.DSN,
		MaxOpenConns: cfg.Postgres.MaxOpenConns,
		MaxIdleConns: cfg.Postgres.MaxIdleConns,
	})
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info().Msg("postgres ready")

	mongoClient, auditDB, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo ready")

	checks := map[string]handlers.Check{
		"postgres": handlers.PostgresCheck(db),
		"mongodb":  handlers.MongoCheck(auditDB),
	}

	// --- Cache ---
	var backend ports.Cache
	switch cfg.Cache.Driver {
	case config.CacheDriverMemory:
		mem, err := memory.New(cfg.Cache.MemorySize)
		if err != nil {
			return err
		}
		backend = mem
	default:
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		backend = redis.NewJSONCache(rdb)
		checks["redis"] = handlers.RedisCheck(rdb)
	}
	log.Info().Str("driver", cfg.Cache.Driver).Msg("cache ready")

	// --- Audit pipeline ---
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	auditRepo := mongo.NewAuditRepository(auditDB)
	if err := auditRepo.EnsureIndexes(ctx); err != nil {
		return err
	}
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditRepo, log.With().Str("component", "audit").Logger())
	dispatcher.Start(workerCtx)
	defer func() {
		stopWorkers()
		dispatcher.Wait()
	}()

	// --- Services ---
	security := service.NewSecurityService(
		postgres.NewSecurityRepository(db),
		postgres.NewRoleManager(db),
		cache.Instrument(backend, "admin_status"),
		cfg.Cache.AdminTTL,
		log.With().Str("component", "security").Logger(),
	)
	tenants := service.NewTenantService(
		postgres.NewTenantRepository(db),
		cache.Instrument(backend, "tenant"),
		cfg.Cache.TenantTTL,
		log.With().Str("component", "tenant").Logger(),
	)
	admin := service.NewAdminService(security, dispatcher, log.With().Str("component", "admin").Logger())

	e := api.NewRouter(api.Dependencies{
		Security:         security,
		Tenants:          tenants,
		Admin:            admin,
		Checks:           checks,
		JWTSecret:        cfg.JWTSecret,
		TenantHeader:     cfg.Tenant.Header,
		TenantDefaultKey: cfg.Tenant.DefaultKey,
		Logger:           log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("bastille started")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
