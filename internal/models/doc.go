// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

/*
Package models defines data structures for VGTrends.

Key Components:

  - GameSale: one row of the video game sales dataset (one title on one platform)
  - Trend: one ranked search query from the Google Trends dataset
  - Region: closed enumeration of sales regions (NA, EU, JP, OTHER, GLOBAL)
  - CatalogType: the two browsable game attributes (genre, platform)
  - Response types: JSON shapes returned by the HTTP API

Records are validated once at load time with go-playground/validator struct
tags; query code trusts them afterwards.
*/
package models
