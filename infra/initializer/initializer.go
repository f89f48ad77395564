package initializer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/amirasaad/usdtbob/infra"
	infra_cache "github.com/amirasaad/usdtbob/infra/cache"
	infra_provider "github.com/amirasaad/usdtbob/infra/provider"
	"github.com/amirasaad/usdtbob/infra/repository/rate"
	"github.com/amirasaad/usdtbob/pkg/app"
	"github.com/amirasaad/usdtbob/pkg/config"
	"github.com/gofiber/fiber/v2"
)

const redisPingTimeout = 2 * time.Second

// InitializeDependencies initializes all the application dependencies.
// Logs are written to logOut.
func InitializeDependencies(cfg *config.App, logOut io.Writer) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := SetupLogger(cfg.Log, logOut)
	deps.Logger = logger

	// Opening the database does not connect; an unreachable store only
	// shows up when it is used.
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	deps.RateRepository = rate.New(db, cfg.DB.Timeout, logger)
	if sqlDB, err := db.DB(); err == nil {
		deps.Closers = append(deps.Closers, sqlDB.Close)
	}

	deps.Fetcher = infra_provider.NewP2PQuoteProvider(cfg.Provider, logger)

	deps.LimiterStorage, err = initLimiterStorage(cfg, logger)
	if err != nil {
		return nil, err
	}
	deps.Closers = append(deps.Closers, deps.LimiterStorage.Close)

	logger.Info("Dependencies initialized",
		"env", cfg.Env,
		"db_driver", cfg.DB.Driver,
		"provider", deps.Fetcher.Name(),
	)
	return deps, nil
}

// initLimiterStorage selects Redis when configured and reachable, and the
// in-memory storage otherwise.
func initLimiterStorage(cfg *config.App, logger *slog.Logger) (fiber.Storage, error) {
	if cfg.Redis.URL == "" {
		return infra_cache.NewMemoryStorage(cfg.RateLimit.Window), nil
	}

	redisStorage, err := infra_cache.NewRedisStorage(cfg.Redis.URL, cfg.Redis.KeyPrefix, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis limiter storage: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := redisStorage.Ping(ctx); err != nil {
		logger.Warn("Redis unreachable, using in-memory limiter storage", "error", err)
		_ = redisStorage.Close()
		return infra_cache.NewMemoryStorage(cfg.RateLimit.Window), nil
	}

	logger.Info("Using Redis limiter storage")
	return redisStorage, nil
}
