// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package database

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/tomtom215/vgtrends/internal/models"
)

func TestTopGamesByYear(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		year  int
		limit int
		want  []models.TopGame
	}{
		{
			name:  "orders by sales and keeps load order on ties",
			year:  2006,
			limit: 10,
			want: []models.TopGame{
				{Name: "Wii Sports", Sales: 82.74},
				{Name: "New Super Mario Bros.", Sales: 30.01},
				{Name: "Wii Play", Sales: 29.02},
				{Name: "Pokemon Diamond", Sales: 18.36},
				{Name: "Tie A", Sales: 1},
				{Name: "Tie B", Sales: 1},
			},
		},
		{
			name:  "truncates to limit",
			year:  2006,
			limit: 2,
			want: []models.TopGame{
				{Name: "Wii Sports", Sales: 82.74},
				{Name: "New Super Mario Bros.", Sales: 30.01},
			},
		},
		{
			name:  "sums platform editions",
			year:  2010,
			limit: 10,
			want:  []models.TopGame{{Name: "Call of Duty: Black Ops", Sales: 27.25}},
		},
		{
			name:  "year without data",
			year:  1999,
			limit: 10,
			want:  []models.TopGame{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := db.TopGamesByYear(ctx, tt.year, tt.limit)
			if err != nil {
				t.Fatalf("TopGamesByYear() error = %v", err)
			}
			assertTopGames(t, got, tt.want)
		})
	}
}

func TestTopGamesByRegionYear(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	got, err := db.TopGamesByRegionYear(ctx, models.RegionJP, 2006, 5)
	if err != nil {
		t.Fatalf("TopGamesByRegionYear() error = %v", err)
	}
	assertTopGames(t, got, []models.TopGame{
		{Name: "New Super Mario Bros.", Sales: 6.5},
		{Name: "Pokemon Diamond", Sales: 6.04},
		{Name: "Wii Sports", Sales: 3.77},
		{Name: "Wii Play", Sales: 2.93},
	})

	got, err = db.TopGamesByRegionYear(ctx, models.RegionNA, 2010, 5)
	if err != nil {
		t.Fatalf("TopGamesByRegionYear() error = %v", err)
	}
	assertTopGames(t, got, []models.TopGame{{Name: "Call of Duty: Black Ops", Sales: 15.69}})

	got, err = db.TopGamesByRegionYear(ctx, models.RegionGlobal, 2006, 1)
	if err != nil {
		t.Fatalf("TopGamesByRegionYear() error = %v", err)
	}
	assertTopGames(t, got, []models.TopGame{{Name: "Wii Sports", Sales: 82.74}})

	if _, err := db.TopGamesByRegionYear(ctx, models.Region("XX"), 2006, 5); !errors.Is(err, models.ErrInvalidRegion) {
		t.Errorf("TopGamesByRegionYear(XX) error = %v, want ErrInvalidRegion", err)
	}
}

func assertTopGames(t *testing.T, got, want []models.TopGame) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d games %+v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i].Name != want[i].Name || !approxEqual(Round2(got[i].Sales), want[i].Sales) {
			t.Errorf("game[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAllYears(t *testing.T) {
	db := setupSeededDB(t)

	got, err := db.AllYears(context.Background())
	if err != nil {
		t.Fatalf("AllYears() error = %v", err)
	}
	want := []int{2006, 2010}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllYears() = %v, want %v", got, want)
	}
}

func TestAllYears_Empty(t *testing.T) {
	db := setupTestDB(t)

	got, err := db.AllYears(context.Background())
	if err != nil {
		t.Fatalf("AllYears() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("AllYears() = %#v, want empty non-nil slice", got)
	}
}

func TestDistinctValues(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	tests := []struct {
		catalog models.CatalogType
		want    []string
	}{
		{models.CatalogGenre, []string{"Misc", "Platform", "Puzzle", "Role-Playing", "Shooter", "Sports"}},
		{models.CatalogPlatform, []string{"DS", "PC", "PS3", "Wii", "X360"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.catalog), func(t *testing.T) {
			got, err := db.DistinctValues(ctx, tt.catalog)
			if err != nil {
				t.Fatalf("DistinctValues() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DistinctValues() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := db.DistinctValues(ctx, models.CatalogType("publisher")); !errors.Is(err, models.ErrInvalidType) {
		t.Errorf("DistinctValues(publisher) error = %v, want ErrInvalidType", err)
	}
}

func TestYearlyCounts(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	totals, err := db.TotalGamesPerYear(ctx)
	if err != nil {
		t.Fatalf("TotalGamesPerYear() error = %v", err)
	}
	wantTotals := []models.YearCount{{Year: 2006, Count: 7}, {Year: 2010, Count: 2}}
	if !reflect.DeepEqual(totals, wantTotals) {
		t.Errorf("TotalGamesPerYear() = %v, want %v", totals, wantTotals)
	}

	wii, err := db.YearlyCountByType(ctx, models.CatalogPlatform, "Wii")
	if err != nil {
		t.Fatalf("YearlyCountByType() error = %v", err)
	}
	if want := []models.YearCount{{Year: 2006, Count: 3}}; !reflect.DeepEqual(wii, want) {
		t.Errorf("YearlyCountByType(platform, Wii) = %v, want %v", wii, want)
	}

	none, err := db.YearlyCountByType(ctx, models.CatalogGenre, "Unknown")
	if err != nil {
		t.Fatalf("YearlyCountByType() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("YearlyCountByType(genre, Unknown) = %v, want empty", none)
	}
}

func TestPercentSeries(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	got, err := db.PercentSeries(ctx, models.CatalogPlatform, "Wii")
	if err != nil {
		t.Fatalf("PercentSeries() error = %v", err)
	}
	want := []models.PercentPoint{{Year: 2006, NumGames: 3, TotalGames: 7, Percent: 42.86}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PercentSeries(platform, Wii) = %+v, want %+v", got, want)
	}

	got, err = db.PercentSeries(ctx, models.CatalogGenre, "Shooter")
	if err != nil {
		t.Fatalf("PercentSeries() error = %v", err)
	}
	want = []models.PercentPoint{{Year: 2010, NumGames: 2, TotalGames: 2, Percent: 100}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PercentSeries(genre, Shooter) = %+v, want %+v", got, want)
	}
}

func TestBuildPercentSeries(t *testing.T) {
	matches := []models.YearCount{{Year: 2000, Count: 1}, {Year: 2001, Count: 2}, {Year: 2002, Count: 5}}
	totals := []models.YearCount{{Year: 2000, Count: 3}, {Year: 2001, Count: 3}}

	got := BuildPercentSeries(matches, totals)
	want := []models.PercentPoint{
		{Year: 2000, NumGames: 1, TotalGames: 3, Percent: 33.33},
		{Year: 2001, NumGames: 2, TotalGames: 3, Percent: 66.67},
		{Year: 2002, NumGames: 5, TotalGames: 0, Percent: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildPercentSeries() = %+v, want %+v", got, want)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{82.744, 82.74},
		{42.857142857, 42.86},
		{0.125, 0.13},
		{-0.125, -0.13},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); !approxEqual(got, tt.want) {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
