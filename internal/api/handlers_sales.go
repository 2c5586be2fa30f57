// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/vgtrends/internal/database"
	"github.com/tomtom215/vgtrends/internal/models"
)

type yearParams struct {
	Year string `json:"year" validate:"year4"`
}

type regionYearParams struct {
	Region string `json:"region" validate:"region"`
	Year   string `json:"year" validate:"year4"`
}

type catalogParams struct {
	Type string `json:"type" validate:"oneof=genre platform"`
}

type catalogValueParams struct {
	Type  string `json:"type" validate:"oneof=genre platform"`
	Value string `json:"value" validate:"required"`
}

// SalesYears handles GET /api/sales/years
//
// @Summary Years with sales and trends data
// @Description Ascending list of years present in both the sales and the search trends datasets
// @Tags Sales
// @Produce json
// @Success 200 {array} integer
// @Failure 500 {object} models.ErrorResponse
// @Router /sales/years [get]
func (h *Handler) SalesYears(w http.ResponseWriter, r *http.Request) {
	h.executeCached(w, r, "sales.years", struct{}{}, func(ctx context.Context) (interface{}, error) {
		return h.store.AllYears(ctx)
	})
}

// SalesGlobal handles GET /api/sales/global/{year}
//
// @Summary Top titles by global sales
// @Description The 10 best selling titles of a year, summed across platforms, sales in millions rounded to 2 decimals
// @Tags Sales
// @Produce json
// @Param year path string true "Four digit year"
// @Success 200 {object} models.GlobalSalesResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /sales/global/{year} [get]
func (h *Handler) SalesGlobal(w http.ResponseWriter, r *http.Request) {
	const endpoint = "sales.global"

	params := yearParams{Year: pathParam(r, "year")}
	if !validateRequest(w, endpoint, &params) {
		return
	}
	year := mustAtoi(params.Year)

	h.executeCached(w, r, endpoint, params, func(ctx context.Context) (interface{}, error) {
		top, err := h.store.TopGamesByYear(ctx, year, globalTopLimit)
		if err != nil {
			return nil, err
		}
		data := make([]models.GlobalSalesEntry, len(top))
		for i, g := range top {
			data[i] = models.GlobalSalesEntry{Name: g.Name, GlobalSales: database.Round2(g.Sales)}
		}
		return models.GlobalSalesResponse{Year: year, Data: data}, nil
	})
}

// SalesRegion handles GET /api/sales/region/{region}/{year}
//
// @Summary Top titles in a sales region
// @Description The 5 best selling titles of a year in a region plus the countries recorded for that region. Each entry carries its sales under the region code, e.g. {"name":"Wii Sports","NA":41.49}.
// @Tags Sales
// @Produce json
// @Param region path string true "Region code (case-insensitive)" Enums(NA, EU, JP, OTHER, GLOBAL)
// @Param year path string true "Four digit year"
// @Success 200 {object} models.RegionSalesResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /sales/region/{region}/{year} [get]
func (h *Handler) SalesRegion(w http.ResponseWriter, r *http.Request) {
	const endpoint = "sales.region"

	params := regionYearParams{Region: pathParam(r, "region"), Year: pathParam(r, "year")}
	if !validateRequest(w, endpoint, &params) {
		return
	}
	region, err := models.ParseRegion(params.Region)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	params.Region = string(region)
	year := mustAtoi(params.Year)

	h.executeCached(w, r, endpoint, params, func(ctx context.Context) (interface{}, error) {
		top, err := h.store.TopGamesByRegionYear(ctx, region, year, regionTopLimit)
		if err != nil {
			return nil, err
		}
		countries, err := h.store.CountriesForRegion(ctx, region, year)
		if err != nil {
			return nil, err
		}

		data := make([]models.RegionSalesEntry, len(top))
		for i, g := range top {
			data[i] = models.RegionSalesEntry{Name: g.Name, Region: region, Sales: database.Round2(g.Sales)}
		}
		return models.RegionSalesResponse{Region: region, Year: year, Countries: countries, Data: data}, nil
	})
}

// SalesCatalog handles GET /api/sales/{type}
//
// @Summary Distinct genres or platforms
// @Description Sorted distinct values of the genre or platform field
// @Tags Sales
// @Produce json
// @Param type path string true "Catalog field" Enums(genre, platform)
// @Success 200 {array} string
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /sales/{type} [get]
func (h *Handler) SalesCatalog(w http.ResponseWriter, r *http.Request) {
	const endpoint = "sales.catalog"

	params := catalogParams{Type: pathParam(r, "type")}
	if !validateRequest(w, endpoint, &params) {
		return
	}
	catalog := models.CatalogType(params.Type)

	h.executeCached(w, r, endpoint, params, func(ctx context.Context) (interface{}, error) {
		return h.store.DistinctValues(ctx, catalog)
	})
}

// SalesCatalogShare handles GET /api/sales/{type}/{value}
//
// @Summary Yearly share of a genre or platform
// @Description For each year with matching titles, the number of matching rows, all rows, and the percentage rounded to 2 decimals
// @Tags Sales
// @Produce json
// @Param type path string true "Catalog field" Enums(genre, platform)
// @Param value path string true "Genre or platform name"
// @Success 200 {array} models.PercentPoint
// @Failure 400 {object} models.ErrorResponse "Malformed type, or a value that does not exist"
// @Failure 500 {object} models.ErrorResponse
// @Router /sales/{type}/{value} [get]
func (h *Handler) SalesCatalogShare(w http.ResponseWriter, r *http.Request) {
	const endpoint = "sales.catalog_share"

	params := catalogValueParams{Type: pathParam(r, "type"), Value: pathParam(r, "value")}
	if !validateRequest(w, endpoint, &params) {
		return
	}
	catalog := models.CatalogType(params.Type)

	h.executeCached(w, r, endpoint, params, func(ctx context.Context) (interface{}, error) {
		known, err := h.store.DistinctValues(ctx, catalog)
		if err != nil {
			return nil, err
		}
		if !containsString(known, params.Value) {
			return nil, &UnknownValueError{Type: params.Type, Value: params.Value}
		}
		return h.store.PercentSeries(ctx, catalog, params.Value)
	})
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
