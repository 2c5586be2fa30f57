// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package database

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vgtrends/internal/logging"
	"github.com/tomtom215/vgtrends/internal/metrics"
	"github.com/tomtom215/vgtrends/internal/models"
	"github.com/tomtom215/vgtrends/internal/validation"
)

// flexNumber decodes a JSON number that may also arrive as a quoted string
// or a placeholder such as "N/A".
type flexNumber struct {
	value   float64
	present bool
	valid   bool
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = flexNumber{}
		return nil
	}

	text := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		text = strings.TrimSpace(text)
	}

	n.present = true
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		n.valid = false
		return nil
	}
	n.value = v
	n.valid = true
	return nil
}

// integer reports the value as an int when it is a whole number.
func (n flexNumber) integer() (int, bool) {
	if !n.valid || n.value != math.Trunc(n.value) {
		return 0, false
	}
	return int(n.value), true
}

// amount reports a sales figure. Missing figures count as zero.
func (n flexNumber) amount() (float64, bool) {
	if !n.present {
		return 0, true
	}
	return n.value, n.valid
}

type rawGameSale struct {
	Name        string     `json:"Name"`
	Year        flexNumber `json:"Year"`
	Genre       string     `json:"Genre"`
	Platform    string     `json:"Platform"`
	Publisher   string     `json:"Publisher"`
	NASales     flexNumber `json:"NA_Sales"`
	EUSales     flexNumber `json:"EU_Sales"`
	JPSales     flexNumber `json:"JP_Sales"`
	OtherSales  flexNumber `json:"Other_Sales"`
	GlobalSales flexNumber `json:"Global_Sales"`
}

func (r *rawGameSale) toModel() (models.GameSale, error) {
	g := models.GameSale{
		Name:      strings.TrimSpace(r.Name),
		Genre:     strings.TrimSpace(r.Genre),
		Platform:  strings.TrimSpace(r.Platform),
		Publisher: strings.TrimSpace(r.Publisher),
	}

	year, ok := r.Year.integer()
	if !ok {
		return g, fmt.Errorf("year is not a number")
	}
	g.Year = year

	sales := []struct {
		src *flexNumber
		dst *float64
		key string
	}{
		{&r.NASales, &g.NASales, "NA_Sales"},
		{&r.EUSales, &g.EUSales, "EU_Sales"},
		{&r.JPSales, &g.JPSales, "JP_Sales"},
		{&r.OtherSales, &g.OtherSales, "Other_Sales"},
		{&r.GlobalSales, &g.GlobalSales, "Global_Sales"},
	}
	for _, s := range sales {
		v, ok := s.src.amount()
		if !ok {
			return g, fmt.Errorf("%s is not a number", s.key)
		}
		*s.dst = v
	}

	if verr := validation.ValidateStruct(&g); verr != nil {
		return g, verr
	}
	return g, nil
}

type rawTrend struct {
	Query       string     `json:"query_en"`
	Year        flexNumber `json:"year"`
	Category    string     `json:"category_en"`
	Region      string     `json:"region"`
	Location    string     `json:"location"`
	CountryCode string     `json:"country_code"`
	Rank        flexNumber `json:"rank"`
}

func (r *rawTrend) toModel() (models.Trend, error) {
	t := models.Trend{
		Query:       strings.TrimSpace(r.Query),
		Category:    strings.TrimSpace(r.Category),
		Region:      strings.TrimSpace(r.Region),
		Location:    strings.TrimSpace(r.Location),
		CountryCode: strings.TrimSpace(r.CountryCode),
	}

	year, ok := r.Year.integer()
	if !ok {
		return t, fmt.Errorf("year is not a number")
	}
	t.Year = year

	rank, ok := r.Rank.integer()
	if !ok {
		return t, fmt.Errorf("rank is not a number")
	}
	t.Rank = rank

	if verr := validation.ValidateStruct(&t); verr != nil {
		return t, verr
	}
	return t, nil
}

// LoadResult summarizes a dataset decode.
type LoadResult struct {
	Loaded  int
	Skipped int
}

// LoadGameSales decodes a vgsales JSON array. Records that fail validation
// are skipped and counted; malformed JSON fails the whole load.
func LoadGameSales(r io.Reader) ([]models.GameSale, LoadResult, error) {
	var raw []rawGameSale
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, LoadResult{}, fmt.Errorf("failed to decode game sales: %w", err)
	}

	games := make([]models.GameSale, 0, len(raw))
	var res LoadResult
	for i := range raw {
		g, err := raw[i].toModel()
		if err != nil {
			res.Skipped++
			logging.Debug().Int("index", i).Str("name", raw[i].Name).Err(err).Msg("Skipping invalid game sale")
			continue
		}
		games = append(games, g)
	}
	res.Loaded = len(games)
	return games, res, nil
}

// LoadTrends decodes a trends JSON array. Records that fail validation are
// skipped and counted; malformed JSON fails the whole load.
func LoadTrends(r io.Reader) ([]models.Trend, LoadResult, error) {
	var raw []rawTrend
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, LoadResult{}, fmt.Errorf("failed to decode trends: %w", err)
	}

	trends := make([]models.Trend, 0, len(raw))
	var res LoadResult
	for i := range raw {
		t, err := raw[i].toModel()
		if err != nil {
			res.Skipped++
			logging.Debug().Int("index", i).Str("query", raw[i].Query).Err(err).Msg("Skipping invalid trend")
			continue
		}
		trends = append(trends, t)
	}
	res.Loaded = len(trends)
	return trends, res, nil
}

// Seed replaces the contents of both tables in a single transaction and
// then ensures the indexes exist.
func (db *DB) Seed(ctx context.Context, games []models.GameSale, trends []models.Trend) (err error) {
	defer func(start time.Time) { observe("seed", tableGameSales, start, err) }(time.Now())

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}

	if err := insertGameSales(ctx, tx, games); err != nil {
		rollbackQuietly(tx)
		return err
	}
	if err := insertTrends(ctx, tx, trends); err != nil {
		rollbackQuietly(tx)
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	if err := db.createIndexes(); err != nil {
		return err
	}
	logging.Info().Int("game_sales", len(games)).Int("trends", len(trends)).Msg("Datasets seeded")
	return nil
}

func insertGameSales(ctx context.Context, tx *sql.Tx, games []models.GameSale) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM game_sales"); err != nil {
		return fmt.Errorf("failed to clear game sales: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO game_sales (id, name, year, genre, platform, publisher,
		na_sales, eu_sales, jp_sales, other_sales, global_sales)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare game sales insert: %w", err)
	}
	defer closeWithLog(stmt, "statement")

	for i := range games {
		g := &games[i]
		if _, err := stmt.ExecContext(ctx, i, g.Name, g.Year, g.Genre, g.Platform, g.Publisher,
			g.NASales, g.EUSales, g.JPSales, g.OtherSales, g.GlobalSales); err != nil {
			return fmt.Errorf("failed to insert game sale %q: %w", g.Name, err)
		}
	}
	return nil
}

func insertTrends(ctx context.Context, tx *sql.Tx, trends []models.Trend) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM trends"); err != nil {
		return fmt.Errorf("failed to clear trends: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO trends (id, search_query, year, category, region, location, country_code, rank)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare trends insert: %w", err)
	}
	defer closeWithLog(stmt, "statement")

	for i := range trends {
		t := &trends[i]
		if _, err := stmt.ExecContext(ctx, i, t.Query, t.Year, t.Category, t.Region,
			t.Location, t.CountryCode, t.Rank); err != nil {
			return fmt.Errorf("failed to insert trend %q: %w", t.Query, err)
		}
	}
	return nil
}

// SeedFromFiles decodes both dataset files before touching the database, so
// a malformed file leaves existing data untouched.
func (db *DB) SeedFromFiles(ctx context.Context, gamesPath, trendsPath string) error {
	games, gamesRes, err := loadFile(gamesPath, LoadGameSales)
	if err != nil {
		return err
	}
	trends, trendsRes, err := loadFile(trendsPath, LoadTrends)
	if err != nil {
		return err
	}

	for dataset, res := range map[string]LoadResult{tableGameSales: gamesRes, tableTrends: trendsRes} {
		metrics.RecordSeed(dataset, res.Loaded, res.Skipped)
		if res.Skipped > 0 {
			logging.Warn().Str("dataset", dataset).Int("skipped", res.Skipped).Int("loaded", res.Loaded).
				Msg("Skipped invalid records")
		}
	}

	return db.Seed(ctx, games, trends)
}

func loadFile[T any](path string, load func(io.Reader) ([]T, LoadResult, error)) ([]T, LoadResult, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, LoadResult{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer closeWithLog(f, "file")

	records, res, err := load(f)
	if err != nil {
		return nil, LoadResult{}, fmt.Errorf("%s: %w", path, err)
	}
	return records, res, nil
}

// IsEmpty reports whether either dataset table has no rows.
func (db *DB) IsEmpty(ctx context.Context) (bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var games, trends int
	err := db.conn.QueryRowContext(ctx,
		"SELECT (SELECT COUNT(*) FROM game_sales), (SELECT COUNT(*) FROM trends)").Scan(&games, &trends)
	if err != nil {
		return false, fmt.Errorf("failed to count dataset rows: %w", err)
	}
	return games == 0 || trends == 0, nil
}
