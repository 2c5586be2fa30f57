// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

/*
Package database provides the DuckDB-backed data store for VGTrends.

The store holds two read-only tables loaded from static JSON datasets:

  - game_sales: one row per title per platform, with per-region sales
  - trends: ranked search queries per country, category and year

Every aggregation the HTTP layer exposes is a method on *DB and is listed in
the Store interface so that handlers can be exercised against fakes, and so
that CircuitBreakerStore can decorate the real store.

# Load Order

Each row carries an id assigned in file order at seed time. Rankings that sum
sales per title break ties on the earliest id, so results are stable across
runs.

# Usage

	db, err := database.New(&cfg.Database)
	if err != nil {
	    return err
	}
	defer db.Close()

	if err := db.SeedFromFiles(ctx, cfg.Seed.GamesFile, cfg.Seed.TrendsFile); err != nil {
	    return err
	}

	top, err := db.TopGamesByYear(ctx, 2010, 10)
*/
package database
