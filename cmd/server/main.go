// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/vgtrends/docs" // registers the swagger doc
	"github.com/tomtom215/vgtrends/internal/api"
	"github.com/tomtom215/vgtrends/internal/cache"
	"github.com/tomtom215/vgtrends/internal/config"
	"github.com/tomtom215/vgtrends/internal/database"
	"github.com/tomtom215/vgtrends/internal/logging"
	"github.com/tomtom215/vgtrends/internal/supervisor"
	"github.com/tomtom215/vgtrends/internal/supervisor/services"
)

const (
	shutdownTimeout = 10 * time.Second
	seedTimeout     = 5 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("environment", cfg.Server.Environment).
		Bool("breaker_enabled", cfg.Breaker.Enabled).
		Msg("Starting VGTrends")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
	logging.Info().Msg("Server stopped")
}

// run owns every resource so deferred cleanup runs before main exits.
func run(cfg *config.Config) error {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	if cfg.Seed.OnStart {
		if err := seedIfEmpty(db, &cfg.Seed); err != nil {
			return err
		}
	}

	var store database.Store = db
	if cfg.Breaker.Enabled {
		store = database.NewCircuitBreakerStore(db, &cfg.Breaker)
	}

	handler := api.NewHandler(store, cache.New(), cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			serveErr = fmt.Errorf("supervisor tree: %w", err)
		}
		cancel()
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
	}
	return serveErr
}

// seedIfEmpty loads the configured datasets into an empty store. A store
// that already holds rows is left untouched.
func seedIfEmpty(db *database.DB, seedCfg *config.SeedConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	empty, err := db.IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect store: %w", err)
	}
	if !empty {
		logging.Info().Msg("Store already populated, skipping seed")
		return nil
	}

	logging.Info().
		Str("games_file", seedCfg.GamesFile).
		Str("trends_file", seedCfg.TrendsFile).
		Msg("Seeding empty store")
	if err := db.SeedFromFiles(ctx, seedCfg.GamesFile, seedCfg.TrendsFile); err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}
	return nil
}
