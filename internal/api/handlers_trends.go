// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/vgtrends/internal/models"
)

type countryYearParams struct {
	Year    string `json:"year" validate:"year4"`
	Country string `json:"country" validate:"required"`
}

type countryCategoryParams struct {
	Year     string `json:"year" validate:"year4"`
	Country  string `json:"country" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// TrendsCountries handles GET /api/trends/countries
//
// @Summary Countries by sales region
// @Description Every country in the trends data, bucketed into NA, EU, JP and OTHER
// @Tags Trends
// @Produce json
// @Success 200 {array} models.RegionCountries
// @Failure 500 {object} models.ErrorResponse
// @Router /trends/countries [get]
func (h *Handler) TrendsCountries(w http.ResponseWriter, r *http.Request) {
	h.executeCached(w, r, "trends.countries", struct{}{}, func(ctx context.Context) (interface{}, error) {
		return h.store.CountriesGroupedByRegion(ctx)
	})
}

// TrendsCategories handles GET /api/trends/region/{year}/country/{country}
//
// @Summary Search categories for a country
// @Description Sorted distinct search categories recorded for a country code in a year
// @Tags Trends
// @Produce json
// @Param year path string true "Four digit year"
// @Param country path string true "Country code, e.g. US"
// @Success 200 {array} string
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /trends/region/{year}/country/{country} [get]
func (h *Handler) TrendsCategories(w http.ResponseWriter, r *http.Request) {
	const endpoint = "trends.categories"

	params := countryYearParams{Year: pathParam(r, "year"), Country: pathParam(r, "country")}
	if !validateRequest(w, endpoint, &params) {
		return
	}
	year := mustAtoi(params.Year)

	h.executeCached(w, r, endpoint, params, func(ctx context.Context) (interface{}, error) {
		return h.store.CategoriesForCountryYear(ctx, year, params.Country)
	})
}

// TrendsByCategory handles GET /api/trends/region/{year}/country/{country}/category/{category}
//
// @Summary Ranked search queries
// @Description Search queries of a category for a country and year, rank 1 first
// @Tags Trends
// @Produce json
// @Param year path string true "Four digit year"
// @Param country path string true "Country code, e.g. US"
// @Param category path string true "Search category"
// @Success 200 {array} models.TrendQueryEntry
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /trends/region/{year}/country/{country}/category/{category} [get]
func (h *Handler) TrendsByCategory(w http.ResponseWriter, r *http.Request) {
	const endpoint = "trends.by_category"

	params := countryCategoryParams{
		Year:     pathParam(r, "year"),
		Country:  pathParam(r, "country"),
		Category: pathParam(r, "category"),
	}
	if !validateRequest(w, endpoint, &params) {
		return
	}
	year := mustAtoi(params.Year)

	h.executeCached(w, r, endpoint, params, func(ctx context.Context) (interface{}, error) {
		ranks, err := h.store.TopTrendsByYearAndCategory(ctx, year, params.Category, params.Country)
		if err != nil {
			return nil, err
		}
		data := make([]models.TrendQueryEntry, len(ranks))
		for i, t := range ranks {
			data[i] = models.TrendQueryEntry{Year: year, Name: t.Query, Country: t.CountryCode, Rank: t.Rank}
		}
		return data, nil
	})
}
