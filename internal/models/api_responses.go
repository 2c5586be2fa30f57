// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package models

import (
	"bytes"

	"github.com/goccy/go-json"
)

// ErrorResponse is the body of every 400 and 500 response.
//
//	{"error": "genre does not exist: Unknown"}
type ErrorResponse struct {
	Error string `json:"error"`
}

// GlobalSalesEntry is one title in the global top list.
type GlobalSalesEntry struct {
	Name        string  `json:"name"`
	GlobalSales float64 `json:"global_sales"`
}

// GlobalSalesResponse is returned by GET /api/sales/global/{year}.
type GlobalSalesResponse struct {
	Year int                `json:"year"`
	Data []GlobalSalesEntry `json:"data"`
}

// RegionSalesEntry is one title in a regional top list. It encodes with the
// region code as the sales key:
//
//	{"name": "Wii Sports", "NA": 41.49}
type RegionSalesEntry struct {
	Name   string
	Region Region
	Sales  float64
}

// MarshalJSON implements json.Marshaler.
func (e RegionSalesEntry) MarshalJSON() ([]byte, error) {
	name, err := json.Marshal(e.Name)
	if err != nil {
		return nil, err
	}
	key, err := json.Marshal(string(e.Region))
	if err != nil {
		return nil, err
	}
	sales, err := json.Marshal(e.Sales)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(`{"name":`)
	buf.Write(name)
	buf.WriteByte(',')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(sales)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RegionSalesResponse is returned by GET /api/sales/region/{region}/{year}.
type RegionSalesResponse struct {
	Region    Region             `json:"region"`
	Year      int                `json:"year"`
	Countries []string           `json:"countries"`
	Data      []RegionSalesEntry `json:"data"`
}

// TrendQueryEntry is one ranked search query for a country and category.
type TrendQueryEntry struct {
	Year    int    `json:"year"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Rank    int    `json:"rank"`
}

// HealthStatus is returned by GET /api/health.
type HealthStatus struct {
	Status        string     `json:"status"`
	Database      string     `json:"database"`
	UptimeSeconds float64    `json:"uptime_seconds"`
	Cache         CacheStats `json:"cache"`
}

// CacheStats summarizes response cache effectiveness.
type CacheStats struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Entries int     `json:"entries"`
	HitRate float64 `json:"hit_rate"`
}
