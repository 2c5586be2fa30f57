// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/tomtom215/vgtrends/internal/models"
)

func TestTrendsCategories(t *testing.T) {
	t.Parallel()

	store := newCountingStore()
	store.categories = []string{"Consoles", "Games"}
	h, _ := newTestServer(store)

	w := doGet(t, h, "/api/trends/region/2018/country/US")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != `["Consoles","Games"]` {
		t.Errorf("body = %s", got)
	}
	if store.lastYear != 2018 || store.lastCountry != "US" {
		t.Errorf("store args = %d/%q", store.lastYear, store.lastCountry)
	}
}

func TestTrendsCategories_EmptyIsOK(t *testing.T) {
	t.Parallel()

	store := newCountingStore()
	store.categories = []string{}
	h, _ := newTestServer(store)

	w := doGet(t, h, "/api/trends/region/1999/country/ZZ")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != "[]" {
		t.Errorf("body = %s, want []", got)
	}
}

func TestTrendsByCategory(t *testing.T) {
	t.Parallel()

	store := newCountingStore()
	store.ranks = []models.TrendRank{
		{Query: "Fortnite", Region: "North America", CountryCode: "US", Rank: 1},
		{Query: "God of War", Region: "North America", CountryCode: "US", Rank: 2},
	}
	h, _ := newTestServer(store)

	w := doGet(t, h, "/api/trends/region/2018/country/US/category/Games")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	want := `[{"year":2018,"name":"Fortnite","country":"US","rank":1},{"year":2018,"name":"God of War","country":"US","rank":2}]`
	if got := w.Body.String(); got != want {
		t.Errorf("body = %s\nwant  %s", got, want)
	}
}

func TestTrendsByCategory_StoreFailure(t *testing.T) {
	t.Parallel()

	store := newCountingStore()
	store.err = errors.New("query failed")
	h, _ := newTestServer(store)

	w := doGet(t, h, "/api/trends/region/2018/country/US/category/Games")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if got := w.Body.String(); got != `{"error":"Server error"}` {
		t.Errorf("body = %s", got)
	}
}

func TestTrendsCountries(t *testing.T) {
	t.Parallel()

	store := newCountingStore()
	store.grouped = []models.RegionCountries{
		{Region: models.RegionNA, Countries: []models.Country{{Location: "United States", CountryCode: "US"}}},
		{Region: models.RegionEU, Countries: []models.Country{}},
		{Region: models.RegionJP, Countries: []models.Country{{Location: "Japan", CountryCode: "JP"}}},
		{Region: models.RegionOther, Countries: []models.Country{}},
	}
	h, _ := newTestServer(store)

	w := doGet(t, h, "/api/trends/countries")
	doGet(t, h, "/api/trends/countries")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	want := `[{"region":"NA","countries":[{"location":"United States","country_code":"US"}]},` +
		`{"region":"EU","countries":[]},` +
		`{"region":"JP","countries":[{"location":"Japan","country_code":"JP"}]},` +
		`{"region":"OTHER","countries":[]}]`
	if got := w.Body.String(); got != want {
		t.Errorf("body = %s\nwant  %s", got, want)
	}
	if n := store.count("CountriesGroupedByRegion"); n != 1 {
		t.Errorf("CountriesGroupedByRegion calls = %d, want 1", n)
	}
}
