// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

// Package main loads the vgsales and trends datasets into the DuckDB store.
//
// It reads the same configuration as the server (koanf defaults, optional
// YAML file, environment), so the usual invocation is:
//
//	DUCKDB_PATH=/data/vgtrends.duckdb \
//	SEED_GAMES_FILE=data/vgsales.json \
//	SEED_TRENDS_FILE=data/trends.json \
//	./seed
//
// Existing rows are replaced in a single transaction. Records that fail
// validation are skipped and counted in the log.
package main

import (
	"context"
	"time"

	"github.com/tomtom215/vgtrends/internal/config"
	"github.com/tomtom215/vgtrends/internal/database"
	"github.com/tomtom215/vgtrends/internal/logging"
)

const seedTimeout = 10 * time.Minute

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

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Seed failed")
	}
}

func run(cfg *config.Config) error {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	start := time.Now()
	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("games_file", cfg.Seed.GamesFile).
		Str("trends_file", cfg.Seed.TrendsFile).
		Msg("Seeding datasets")

	if err := db.SeedFromFiles(ctx, cfg.Seed.GamesFile, cfg.Seed.TrendsFile); err != nil {
		return err
	}

	// Flush the WAL so the server opens a compact file.
	if err := db.Checkpoint(ctx); err != nil {
		logging.Warn().Err(err).Msg("Checkpoint after seed failed")
	}

	logging.Info().Dur("elapsed", time.Since(start)).Msg("Seed complete")
	return nil
}
