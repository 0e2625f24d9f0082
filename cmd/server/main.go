// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/flavorlens/docs"
	"github.com/tomtom215/flavorlens/internal/analytics"
	"github.com/tomtom215/flavorlens/internal/api"
	"github.com/tomtom215/flavorlens/internal/cache"
	"github.com/tomtom215/flavorlens/internal/config"
	"github.com/tomtom215/flavorlens/internal/database"
	"github.com/tomtom215/flavorlens/internal/logging"
	"github.com/tomtom215/flavorlens/internal/metrics"
	"github.com/tomtom215/flavorlens/internal/supervisor"
	"github.com/tomtom215/flavorlens/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

const cacheStatsInterval = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("version", version).
		Str("database", logging.RedactDSN(cfg.Database.DSN())).
		Str("table", cfg.Database.Table).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Str("cache_backend", cfg.Cache.Backend).
		Msg("Starting FlavorLens API")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	resultCache, closeCache, err := newResultCache(cfg.Cache)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create result cache")
	}
	defer closeCache()

	exec := database.NewExecutor(cfg.Database, resultCache, cfg.Cache.TTL())
	defer func() {
		if err := exec.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close database")
		}
	}()

	// The engine connects lazily; a failed ping only delays readiness.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := exec.Ping(pingCtx); err != nil {
		logging.Warn().Err(err).Msg("Database not reachable at startup")
	}
	pingCancel()

	svc := analytics.NewService(exec, cfg.Analytics, cfg.Database.Table)
	handler := api.NewHandler(svc, exec, version)
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.CORS, cfg.RateLimit))
	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	if resultCache != nil {
		tree.AddDataService(services.NewCacheStatsService(exec, cacheStatsInterval))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	err = awaitShutdown(ctx, errCh, cfg.Server.ShutdownTimeout+time.Second, func() {
		logging.Info().Msg("Shutdown signal received, waiting for services to stop")
	})
	stop()
	if err != nil {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, s := range unstopped {
		logging.Warn().Str("service", s.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("FlavorLens API stopped")
}

// newResultCache builds the configured cache backend. A disabled cache
// returns nil, which turns caching off in the executor.
func newResultCache(cfg config.CacheConfig) (cache.Cacher[*database.QueryResult], func(), error) {
	noop := func() {}
	if !cfg.Enabled {
		return nil, noop, nil
	}

	switch cfg.Backend {
	case "badger":
		b, err := cache.NewBadger[*database.QueryResult]()
		if err != nil {
			return nil, noop, err
		}
		return b, func() {
			if err := b.Close(); err != nil {
				logging.Warn().Err(err).Msg("Failed to close badger cache")
			}
		}, nil
	default:
		return cache.NewMemory[*database.QueryResult](), noop, nil
	}
}
