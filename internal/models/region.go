// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRegion is returned for region codes outside the Region enumeration.
var ErrInvalidRegion = errors.New("invalid region")

// Region is a sales-side regional partition code.
type Region string

// Region codes.
const (
	RegionNA     Region = "NA"
	RegionEU     Region = "EU"
	RegionJP     Region = "JP"
	RegionOther  Region = "OTHER"
	RegionGlobal Region = "GLOBAL"
)

// Trend region labels as they appear in the trends dataset.
const (
	TrendLabelNorthAmerica = "North America"
	TrendLabelEurope       = "Europe"
	TrendLabelJapan        = "Japan"
	TrendLabelGlobal       = "Global"
)

// MapRegions lists the buckets used when grouping countries for the world map,
// in display order.
var MapRegions = []Region{RegionNA, RegionEU, RegionJP, RegionOther}

// NamedTrendLabels are the trend region labels owned by a specific Region.
// Every other label (except Global) belongs to OTHER.
var NamedTrendLabels = []string{TrendLabelNorthAmerica, TrendLabelEurope, TrendLabelJapan}

// ParseRegion normalizes a region code (case-insensitive) and checks it
// against the enumeration.
func ParseRegion(code string) (Region, error) {
	r := Region(strings.ToUpper(strings.TrimSpace(code)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidRegion, code)
	}
	return r, nil
}

// Valid reports whether r is one of the enumerated codes.
func (r Region) Valid() bool {
	switch r {
	case RegionNA, RegionEU, RegionJP, RegionOther, RegionGlobal:
		return true
	}
	return false
}

// SalesColumn returns the game_sales column holding this region's sales.
func (r Region) SalesColumn() (string, error) {
	switch r {
	case RegionNA:
		return "na_sales", nil
	case RegionEU:
		return "eu_sales", nil
	case RegionJP:
		return "jp_sales", nil
	case RegionOther:
		return "other_sales", nil
	case RegionGlobal:
		return "global_sales", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidRegion, r)
	}
}

// SalesOf returns this region's sales figure for a record.
func (r Region) SalesOf(g *GameSale) float64 {
	switch r {
	case RegionNA:
		return g.NASales
	case RegionEU:
		return g.EUSales
	case RegionJP:
		return g.JPSales
	case RegionOther:
		return g.OtherSales
	case RegionGlobal:
		return g.GlobalSales
	default:
		return 0
	}
}

// TrendLabel returns the trends dataset label for a named region. OTHER and
// GLOBAL have no single label and return false.
func (r Region) TrendLabel() (string, bool) {
	switch r {
	case RegionNA:
		return TrendLabelNorthAmerica, true
	case RegionEU:
		return TrendLabelEurope, true
	case RegionJP:
		return TrendLabelJapan, true
	case RegionOther, RegionGlobal:
		return "", false
	default:
		return "", false
	}
}

// RegionForTrendLabel buckets a trend region label into a map region.
// Unknown labels fall into OTHER.
func RegionForTrendLabel(label string) Region {
	switch label {
	case TrendLabelNorthAmerica:
		return RegionNA
	case TrendLabelEurope:
		return RegionEU
	case TrendLabelJapan:
		return RegionJP
	default:
		return RegionOther
	}
}
