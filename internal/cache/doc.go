// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

/*
Package cache memoizes encoded API responses.

The datasets behind the API are loaded once and never change while the
server runs, so a response computed for a given endpoint and parameter set
stays valid for the life of the process. Entries have no expiry and are only
dropped by Clear.

# Usage

	c := cache.New()

	key, err := cache.GenerateKey("sales.global", map[string]int{"year": 2006})
	if err == nil {
	    if body, ok := c.Get(key); ok {
	        // write body
	    }
	}
	c.Set(key, body)

Values are stored as copies of the encoded JSON bytes, so a hit always
returns the same bytes that were first written for the key.

# Metrics

Hits, misses and the entry count are exported through the
cache_hits_total, cache_misses_total and cache_entries collectors with
cache_type="response".
*/
package cache
