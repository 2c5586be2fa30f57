// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package database

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/vgtrends/internal/models"
)

// TopGamesByYear returns the best selling titles of a year by global sales.
// Platform rows sharing a title are summed; rows with no global sales are
// ignored. Ties keep load order.
func (db *DB) TopGamesByYear(ctx context.Context, year, limit int) (result []models.TopGame, err error) {
	defer func(start time.Time) { observe("top_games_by_year", tableGameSales, start, err) }(time.Now())

	return db.topGames(ctx, "global_sales", year, limit)
}

// TopGamesByRegionYear is TopGamesByYear summed over one region's sales
// column. Rows with no sales in the region are ignored.
func (db *DB) TopGamesByRegionYear(ctx context.Context, region models.Region, year, limit int) (result []models.TopGame, err error) {
	defer func(start time.Time) { observe("top_games_by_region_year", tableGameSales, start, err) }(time.Now())

	column, err := region.SalesColumn()
	if err != nil {
		return nil, err
	}
	return db.topGames(ctx, column, year, limit)
}

// topGames collapses rows by name over a sales column. column always comes
// from models.Region.SalesColumn, never from request input.
func (db *DB) topGames(ctx context.Context, column string, year, limit int) ([]models.TopGame, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := fmt.Sprintf(`
	SELECT name, SUM(%[1]s) AS total
	FROM game_sales
	WHERE year = ? AND %[1]s > 0
	GROUP BY name
	ORDER BY total DESC, MIN(id) ASC
	LIMIT ?`, column)

	rows, err := db.conn.QueryContext(ctx, query, year, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top games by %s: %w", column, err)
	}
	defer closeWithLog(rows, "rows")

	games := make([]models.TopGame, 0, limit)
	for rows.Next() {
		var g models.TopGame
		if err := rows.Scan(&g.Name, &g.Sales); err != nil {
			return nil, fmt.Errorf("failed to scan top game: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top games: %w", err)
	}
	return games, nil
}

// AllYears returns, ascending, the years with data in both datasets.
func (db *DB) AllYears(ctx context.Context) (years []int, err error) {
	defer func(start time.Time) { observe("all_years", tableGameSales, start, err) }(time.Now())

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
	SELECT year FROM game_sales
	INTERSECT
	SELECT year FROM trends
	ORDER BY year ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query years: %w", err)
	}
	defer closeWithLog(rows, "rows")

	years = []int{}
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("failed to scan year: %w", err)
		}
		years = append(years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating years: %w", err)
	}
	return years, nil
}

// DistinctValues returns the sorted, trimmed, non-empty distinct values of a
// catalog field.
func (db *DB) DistinctValues(ctx context.Context, catalog models.CatalogType) (values []string, err error) {
	defer func(start time.Time) { observe("distinct_values", tableGameSales, start, err) }(time.Now())

	column, err := catalog.Column()
	if err != nil {
		return nil, err
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, fmt.Sprintf("SELECT DISTINCT %s FROM game_sales", column))
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct %s: %w", column, err)
	}
	defer closeWithLog(rows, "rows")

	seen := make(map[string]struct{})
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", column, err)
		}
		trimmed := strings.TrimSpace(v.String)
		if trimmed == "" {
			continue
		}
		seen[trimmed] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", column, err)
	}

	return sortedKeys(seen), nil
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// YearlyCountByType counts, per year, the rows whose catalog field equals
// value. Rows are counted per platform edition.
func (db *DB) YearlyCountByType(ctx context.Context, catalog models.CatalogType, value string) (counts []models.YearCount, err error) {
	defer func(start time.Time) { observe("yearly_count_by_type", tableGameSales, start, err) }(time.Now())

	column, err := catalog.Column()
	if err != nil {
		return nil, err
	}
	return db.countPerYear(ctx, fmt.Sprintf("WHERE %s = ?", column), value)
}

// TotalGamesPerYear counts all rows per year. It is the denominator of
// PercentSeries and counts platform editions the same way.
func (db *DB) TotalGamesPerYear(ctx context.Context) (counts []models.YearCount, err error) {
	defer func(start time.Time) { observe("total_games_per_year", tableGameSales, start, err) }(time.Now())

	return db.countPerYear(ctx, "")
}

func (db *DB) countPerYear(ctx context.Context, where string, args ...interface{}) ([]models.YearCount, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := fmt.Sprintf(`
	SELECT year, COUNT(*) AS n
	FROM game_sales
	%s
	GROUP BY year
	ORDER BY year ASC`, where)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count games per year: %w", err)
	}
	defer closeWithLog(rows, "rows")

	counts := []models.YearCount{}
	for rows.Next() {
		var c models.YearCount
		if err := rows.Scan(&c.Year, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan year count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating year counts: %w", err)
	}
	return counts, nil
}

// PercentSeries returns, for each year with matching rows, the share of that
// year's rows whose catalog field equals value.
func (db *DB) PercentSeries(ctx context.Context, catalog models.CatalogType, value string) ([]models.PercentPoint, error) {
	matches, err := db.YearlyCountByType(ctx, catalog, value)
	if err != nil {
		return nil, err
	}
	totals, err := db.TotalGamesPerYear(ctx)
	if err != nil {
		return nil, err
	}
	return BuildPercentSeries(matches, totals), nil
}

// BuildPercentSeries joins per-year match counts with per-year totals. A
// year missing from totals reports a total of 0 and a percent of 0.
func BuildPercentSeries(matches, totals []models.YearCount) []models.PercentPoint {
	totalByYear := make(map[int]int, len(totals))
	for _, t := range totals {
		totalByYear[t.Year] = t.Count
	}

	series := make([]models.PercentPoint, 0, len(matches))
	for _, m := range matches {
		total := totalByYear[m.Year]
		percent := 0.0
		if total > 0 {
			percent = Round2(float64(m.Count) / float64(total) * 100)
		}
		series = append(series, models.PercentPoint{
			Year:       m.Year,
			NumGames:   m.Count,
			TotalGames: total,
			Percent:    percent,
		})
	}
	return series
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
