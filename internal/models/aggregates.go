// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package models

// TopGame is a title with its sales collapsed across platforms.
type TopGame struct {
	Name  string
	Sales float64
}

// YearCount is a per-year row count.
type YearCount struct {
	Year  int
	Count int
}

// TrendRank is a ranked query returned by the trends aggregations.
type TrendRank struct {
	Query       string
	Region      string
	CountryCode string
	Rank        int
}

// Country is a trends location with its code.
type Country struct {
	Location    string `json:"location"`
	CountryCode string `json:"country_code"`
}

// RegionCountries is one world-map bucket.
type RegionCountries struct {
	Region    Region    `json:"region"`
	Countries []Country `json:"countries"`
}

// PercentPoint is one year of a genre/platform share series.
type PercentPoint struct {
	Year       int     `json:"year"`
	NumGames   int     `json:"num_games"`
	TotalGames int     `json:"total_games"`
	Percent    float64 `json:"percent"`
}
