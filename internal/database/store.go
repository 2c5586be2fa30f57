// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package database

import (
	"context"
	"time"

	"github.com/tomtom215/vgtrends/internal/metrics"
	"github.com/tomtom215/vgtrends/internal/models"
)

// Store is the read-only aggregation surface over the sales and trends
// datasets. *DB implements it directly; CircuitBreakerStore decorates any
// Store.
type Store interface {
	Ping(ctx context.Context) error

	TopGamesByYear(ctx context.Context, year, limit int) ([]models.TopGame, error)
	TopGamesByRegionYear(ctx context.Context, region models.Region, year, limit int) ([]models.TopGame, error)
	AllYears(ctx context.Context) ([]int, error)
	DistinctValues(ctx context.Context, catalog models.CatalogType) ([]string, error)
	YearlyCountByType(ctx context.Context, catalog models.CatalogType, value string) ([]models.YearCount, error)
	TotalGamesPerYear(ctx context.Context) ([]models.YearCount, error)
	PercentSeries(ctx context.Context, catalog models.CatalogType, value string) ([]models.PercentPoint, error)

	CountriesForRegion(ctx context.Context, region models.Region, year int) ([]string, error)
	CountriesGroupedByRegion(ctx context.Context) ([]models.RegionCountries, error)
	CategoriesForCountryYear(ctx context.Context, year int, countryCode string) ([]string, error)
	TopTrendsByYearAndCategory(ctx context.Context, year int, category, countryCode string) ([]models.TrendRank, error)
}

var (
	_ Store = (*DB)(nil)
	_ Store = (*CircuitBreakerStore)(nil)
)

const (
	tableGameSales = "game_sales"
	tableTrends    = "trends"
)

// observe records query latency and errors for an aggregation.
func observe(operation, table string, start time.Time, err error) {
	metrics.RecordDBQuery(operation, table, time.Since(start), err)
}
