// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/vgtrends/internal/models"
)

// CountriesForRegion returns the sorted distinct countries recorded for a
// region in the trends data. Results are limited to year when that year has
// any match and fall back to every year otherwise; year 0 means every year.
//
// GLOBAL covers every country. OTHER covers every region label other than
// North America, Europe, Japan and Global.
func (db *DB) CountriesForRegion(ctx context.Context, region models.Region, year int) (countries []string, err error) {
	defer func(start time.Time) { observe("countries_for_region", tableTrends, start, err) }(time.Now())

	if !region.Valid() {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidRegion, region)
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	labels, err := db.regionLabels(ctx, region)
	if err != nil {
		return nil, err
	}
	if labels != nil && len(labels) == 0 {
		return []string{}, nil
	}

	var b strings.Builder
	b.WriteString("SELECT DISTINCT location FROM trends WHERE location <> ?")
	args := []interface{}{models.TrendLabelGlobal}
	if labels != nil {
		b.WriteString(" AND region IN (")
		b.WriteString(placeholders(len(labels)))
		b.WriteString(")")
		for _, l := range labels {
			args = append(args, l)
		}
	}
	base := b.String()

	if year != 0 {
		countries, err = db.queryStrings(ctx, base+" AND year = ? ORDER BY location ASC", append(args, year)...)
		if err != nil {
			return nil, fmt.Errorf("failed to query countries for %s: %w", region, err)
		}
		if len(countries) > 0 {
			return countries, nil
		}
	}

	countries, err = db.queryStrings(ctx, base+" ORDER BY location ASC", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries for %s: %w", region, err)
	}
	return countries, nil
}

// regionLabels resolves the trend region labels a sales region covers. A nil
// slice means no restriction.
func (db *DB) regionLabels(ctx context.Context, region models.Region) ([]string, error) {
	if label, ok := region.TrendLabel(); ok {
		return []string{label}, nil
	}
	if region == models.RegionGlobal {
		return nil, nil
	}

	all, err := db.queryStrings(ctx, "SELECT DISTINCT region FROM trends ORDER BY region ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query region labels: %w", err)
	}
	return OtherRegionLabels(all), nil
}

// OtherRegionLabels filters labels down to those belonging to OTHER.
func OtherRegionLabels(labels []string) []string {
	excluded := make(map[string]struct{}, len(models.NamedTrendLabels)+1)
	for _, l := range models.NamedTrendLabels {
		excluded[l] = struct{}{}
	}
	excluded[models.TrendLabelGlobal] = struct{}{}

	other := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, skip := excluded[l]; skip {
			continue
		}
		other = append(other, l)
	}
	return other
}

// CountriesGroupedByRegion buckets every non-Global country into NA, EU, JP
// and OTHER, in that order. Countries are sorted by name within a bucket.
func (db *DB) CountriesGroupedByRegion(ctx context.Context) (groups []models.RegionCountries, err error) {
	defer func(start time.Time) { observe("countries_grouped_by_region", tableTrends, start, err) }(time.Now())

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
	SELECT DISTINCT region, location, country_code
	FROM trends
	WHERE location <> ? AND region <> ?
	ORDER BY location ASC, country_code ASC`, models.TrendLabelGlobal, models.TrendLabelGlobal)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries by region: %w", err)
	}
	defer closeWithLog(rows, "rows")

	buckets := make(map[models.Region][]models.Country, len(models.MapRegions))
	seen := make(map[models.Region]map[models.Country]struct{}, len(models.MapRegions))
	for rows.Next() {
		var label string
		var c models.Country
		if err := rows.Scan(&label, &c.Location, &c.CountryCode); err != nil {
			return nil, fmt.Errorf("failed to scan country: %w", err)
		}
		region := models.RegionForTrendLabel(label)
		if seen[region] == nil {
			seen[region] = make(map[models.Country]struct{})
		}
		if _, dup := seen[region][c]; dup {
			continue
		}
		seen[region][c] = struct{}{}
		buckets[region] = append(buckets[region], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating countries: %w", err)
	}

	groups = make([]models.RegionCountries, 0, len(models.MapRegions))
	for _, region := range models.MapRegions {
		countries := buckets[region]
		if countries == nil {
			countries = []models.Country{}
		}
		groups = append(groups, models.RegionCountries{Region: region, Countries: countries})
	}
	return groups, nil
}

// CategoriesForCountryYear returns the sorted distinct search categories
// recorded for a country in a year.
func (db *DB) CategoriesForCountryYear(ctx context.Context, year int, countryCode string) (categories []string, err error) {
	defer func(start time.Time) { observe("categories_for_country_year", tableTrends, start, err) }(time.Now())

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	categories, err = db.queryStrings(ctx, `
	SELECT DISTINCT category
	FROM trends
	WHERE year = ? AND country_code = ?
	ORDER BY category ASC`, year, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	return categories, nil
}

// TopTrendsByYearAndCategory returns the ranked queries of a category in a
// year, best rank first. An empty countryCode matches every country.
func (db *DB) TopTrendsByYearAndCategory(ctx context.Context, year int, category, countryCode string) (trends []models.TrendRank, err error) {
	defer func(start time.Time) { observe("top_trends_by_year_and_category", tableTrends, start, err) }(time.Now())

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT search_query, region, country_code, rank
	FROM trends
	WHERE year = ? AND category = ?`
	args := []interface{}{year, category}
	if countryCode != "" {
		query += " AND country_code = ?"
		args = append(args, countryCode)
	}
	query += " ORDER BY rank ASC, id ASC"

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trends: %w", err)
	}
	defer closeWithLog(rows, "rows")

	trends = []models.TrendRank{}
	for rows.Next() {
		var t models.TrendRank
		if err := rows.Scan(&t.Query, &t.Region, &t.CountryCode, &t.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan trend: %w", err)
		}
		trends = append(trends, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trends: %w", err)
	}
	return trends, nil
}

// queryStrings runs a single-column query and collects the values.
func (db *DB) queryStrings(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "rows")

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
