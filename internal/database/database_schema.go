// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// tableCreationQueries define the two dataset tables. id preserves file
// order from the seed input and is not a key: reseeding deletes and
// re-inserts the same ids inside one transaction.
var tableCreationQueries = []string{
	`CREATE TABLE IF NOT EXISTS game_sales (
		id INTEGER NOT NULL,
		name VARCHAR NOT NULL,
		year INTEGER NOT NULL,
		genre VARCHAR NOT NULL DEFAULT '',
		platform VARCHAR NOT NULL DEFAULT '',
		publisher VARCHAR NOT NULL DEFAULT '',
		na_sales DOUBLE NOT NULL DEFAULT 0,
		eu_sales DOUBLE NOT NULL DEFAULT 0,
		jp_sales DOUBLE NOT NULL DEFAULT 0,
		other_sales DOUBLE NOT NULL DEFAULT 0,
		global_sales DOUBLE NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS trends (
		id INTEGER NOT NULL,
		search_query VARCHAR NOT NULL,
		year INTEGER NOT NULL,
		category VARCHAR NOT NULL,
		region VARCHAR NOT NULL,
		location VARCHAR NOT NULL,
		country_code VARCHAR NOT NULL DEFAULT '',
		rank INTEGER NOT NULL
	)`,
}

// indexQueries back the aggregation predicates: year filters with a
// positive regional sales column, genre/platform lookups, and the
// region/year/country/category filters over trends.
var indexQueries = []string{
	"CREATE INDEX IF NOT EXISTS idx_game_sales_year ON game_sales(year)",
	"CREATE INDEX IF NOT EXISTS idx_game_sales_year_na ON game_sales(year, na_sales)",
	"CREATE INDEX IF NOT EXISTS idx_game_sales_year_eu ON game_sales(year, eu_sales)",
	"CREATE INDEX IF NOT EXISTS idx_game_sales_year_jp ON game_sales(year, jp_sales)",
	"CREATE INDEX IF NOT EXISTS idx_game_sales_year_other ON game_sales(year, other_sales)",
	"CREATE INDEX IF NOT EXISTS idx_game_sales_genre ON game_sales(genre)",
	"CREATE INDEX IF NOT EXISTS idx_game_sales_platform ON game_sales(platform)",

	"CREATE INDEX IF NOT EXISTS idx_trends_year ON trends(year)",
	"CREATE INDEX IF NOT EXISTS idx_trends_region ON trends(region)",
	"CREATE INDEX IF NOT EXISTS idx_trends_country ON trends(country_code)",
	"CREATE INDEX IF NOT EXISTS idx_trends_region_year ON trends(region, year)",
	"CREATE INDEX IF NOT EXISTS idx_trends_year_country ON trends(year, country_code)",
	"CREATE INDEX IF NOT EXISTS idx_trends_year_country_category ON trends(year, country_code, category)",
}

// createTables creates the dataset tables
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// createIndexes creates indexes for the aggregation predicates
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range indexQueries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
