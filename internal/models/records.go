// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package models

// GameSale is one row of the sales dataset: a single title on a single
// platform. The same title may appear once per platform.
type GameSale struct {
	Name        string  `json:"name" validate:"required"`
	Year        int     `json:"year" validate:"min=1000,max=9999"`
	Genre       string  `json:"genre"`
	Platform    string  `json:"platform"`
	Publisher   string  `json:"publisher"`
	NASales     float64 `json:"na_sales" validate:"gte=0"`
	EUSales     float64 `json:"eu_sales" validate:"gte=0"`
	JPSales     float64 `json:"jp_sales" validate:"gte=0"`
	OtherSales  float64 `json:"other_sales" validate:"gte=0"`
	GlobalSales float64 `json:"global_sales" validate:"gte=0"`
}

// Trend is one ranked search query for a country (or "Global") in a year.
type Trend struct {
	Query       string `json:"query" validate:"required"`
	Year        int    `json:"year" validate:"min=1000,max=9999"`
	Category    string `json:"category" validate:"required"`
	Region      string `json:"region" validate:"required"`
	Location    string `json:"location" validate:"required"`
	CountryCode string `json:"country_code"`
	Rank        int    `json:"rank" validate:"gt=0"`
}

// IsGlobal reports whether the record is the worldwide ranking rather than a
// specific country.
func (t *Trend) IsGlobal() bool {
	return t.Location == TrendLabelGlobal
}
