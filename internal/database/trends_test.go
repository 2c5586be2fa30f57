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

func TestCountriesForRegion(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		region models.Region
		year   int
		want   []string
	}{
		{"named region in year", models.RegionNA, 2010, []string{"Canada", "United States"}},
		{"falls back when year has no match", models.RegionNA, 2006, []string{"Canada", "United States"}},
		{"year restricts when it matches", models.RegionEU, 2006, []string{"France"}},
		{"zero year means all years", models.RegionEU, 0, []string{"France", "Germany"}},
		{"japan fallback", models.RegionJP, 2010, []string{"Japan"}},
		{"other uses every unnamed label", models.RegionOther, 2010, []string{"Brazil"}},
		{"other over all years", models.RegionOther, 0, []string{"Australia", "Brazil"}},
		{"global covers every country", models.RegionGlobal, 2010, []string{"Brazil", "Canada", "Germany", "United States"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := db.CountriesForRegion(ctx, tt.region, tt.year)
			if err != nil {
				t.Fatalf("CountriesForRegion() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CountriesForRegion(%s, %d) = %v, want %v", tt.region, tt.year, got, tt.want)
			}
		})
	}

	if _, err := db.CountriesForRegion(ctx, models.Region("XX"), 2010); !errors.Is(err, models.ErrInvalidRegion) {
		t.Errorf("CountriesForRegion(XX) error = %v, want ErrInvalidRegion", err)
	}
}

func TestCountriesForRegion_NoOtherLabels(t *testing.T) {
	db := setupTestDB(t)
	trends := []models.Trend{
		{Query: "q", Year: 2010, Category: "Games", Region: "North America", Location: "Canada", CountryCode: "CA", Rank: 1},
	}
	if err := db.Seed(context.Background(), nil, trends); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	got, err := db.CountriesForRegion(context.Background(), models.RegionOther, 2010)
	if err != nil {
		t.Fatalf("CountriesForRegion() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("CountriesForRegion(OTHER) = %#v, want empty", got)
	}
}

func TestOtherRegionLabels(t *testing.T) {
	labels := []string{"Asia Pacific", "Europe", "Global", "Japan", "Latin America", "North America"}
	got := OtherRegionLabels(labels)
	want := []string{"Asia Pacific", "Latin America"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OtherRegionLabels() = %v, want %v", got, want)
	}
}

func TestCountriesGroupedByRegion(t *testing.T) {
	db := setupSeededDB(t)

	got, err := db.CountriesGroupedByRegion(context.Background())
	if err != nil {
		t.Fatalf("CountriesGroupedByRegion() error = %v", err)
	}
	want := []models.RegionCountries{
		{Region: models.RegionNA, Countries: []models.Country{
			{Location: "Canada", CountryCode: "CA"},
			{Location: "United States", CountryCode: "US"},
		}},
		{Region: models.RegionEU, Countries: []models.Country{
			{Location: "France", CountryCode: "FR"},
			{Location: "Germany", CountryCode: "DE"},
		}},
		{Region: models.RegionJP, Countries: []models.Country{
			{Location: "Japan", CountryCode: "JP"},
		}},
		{Region: models.RegionOther, Countries: []models.Country{
			{Location: "Australia", CountryCode: "AU"},
			{Location: "Brazil", CountryCode: "BR"},
		}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountriesGroupedByRegion() = %+v, want %+v", got, want)
	}
}

func TestCountriesGroupedByRegion_Empty(t *testing.T) {
	db := setupTestDB(t)

	got, err := db.CountriesGroupedByRegion(context.Background())
	if err != nil {
		t.Fatalf("CountriesGroupedByRegion() error = %v", err)
	}
	if len(got) != len(models.MapRegions) {
		t.Fatalf("got %d groups, want %d", len(got), len(models.MapRegions))
	}
	for i, g := range got {
		if g.Region != models.MapRegions[i] {
			t.Errorf("group[%d].Region = %s, want %s", i, g.Region, models.MapRegions[i])
		}
		if g.Countries == nil || len(g.Countries) != 0 {
			t.Errorf("group[%d].Countries = %#v, want empty", i, g.Countries)
		}
	}
}

func TestCategoriesForCountryYear(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	got, err := db.CategoriesForCountryYear(ctx, 2010, "US")
	if err != nil {
		t.Fatalf("CategoriesForCountryYear() error = %v", err)
	}
	if want := []string{"Consoles", "Games"}; !reflect.DeepEqual(got, want) {
		t.Errorf("CategoriesForCountryYear(2010, US) = %v, want %v", got, want)
	}

	got, err = db.CategoriesForCountryYear(ctx, 2010, "ZZ")
	if err != nil {
		t.Fatalf("CategoriesForCountryYear() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("CategoriesForCountryYear(2010, ZZ) = %v, want empty", got)
	}
}

func TestTopTrendsByYearAndCategory(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	got, err := db.TopTrendsByYearAndCategory(ctx, 2010, "Games", "US")
	if err != nil {
		t.Fatalf("TopTrendsByYearAndCategory() error = %v", err)
	}
	want := []models.TrendRank{
		{Query: "minecraft", Region: "North America", CountryCode: "US", Rank: 1},
		{Query: "halo", Region: "North America", CountryCode: "US", Rank: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopTrendsByYearAndCategory(US) = %+v, want %+v", got, want)
	}

	all, err := db.TopTrendsByYearAndCategory(ctx, 2010, "Games", "")
	if err != nil {
		t.Fatalf("TopTrendsByYearAndCategory() error = %v", err)
	}
	var queries []string
	for _, tr := range all {
		queries = append(queries, tr.Query)
	}
	wantQueries := []string{"minecraft", "call of duty", "gta", "global query", "fortnite", "halo"}
	if !reflect.DeepEqual(queries, wantQueries) {
		t.Errorf("TopTrendsByYearAndCategory(all) queries = %v, want %v", queries, wantQueries)
	}
}

func TestPlaceholders(t *testing.T) {
	tests := map[int]string{0: "", 1: "?", 3: "?, ?, ?"}
	for n, want := range tests {
		if got := placeholders(n); got != want {
			t.Errorf("placeholders(%d) = %q, want %q", n, got, want)
		}
	}
}
