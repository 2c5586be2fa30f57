// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

/*
Package api provides the HTTP REST API for VGTrends.

Endpoints:

	GET /api/sales/years                         years present in both datasets
	GET /api/sales/global/{year}                 top 10 titles by global sales
	GET /api/sales/region/{region}/{year}        top 5 titles in a region plus its countries
	GET /api/sales/{type}                        distinct genres or platforms
	GET /api/sales/{type}/{value}                yearly share of a genre or platform
	GET /api/trends/countries                    countries bucketed by sales region
	GET /api/trends/region/{year}/country/{country}
	                                             search categories for a country
	GET /api/trends/region/{year}/country/{country}/category/{category}
	                                             ranked search queries
	GET /api/health                              liveness, database ping and cache stats
	GET /metrics                                 Prometheus exposition
	GET /swagger/*                               OpenAPI UI

# Request Flow

Every data endpoint follows the same steps:

 1. Path parameters are validated with go-playground/validator. Failures
    return 400 {"error": "..."} and the store is never queried.
 2. The response cache is consulted with a key built from the endpoint name
    and the normalized parameters. A hit writes the cached bytes verbatim.
 3. On a miss the store is queried, the result shaped, encoded with
    goccy/go-json, cached and written.
 4. Store failures return 500 {"error": "Server error"}; the detail is logged
    with the request ID.

Unmatched routes return 404 with the plain text body "Page not found".

# Usage

	store := database.NewCircuitBreakerStore(db, &cfg.Breaker)
	handler := api.NewHandler(store, cache.New(), cfg)
	router := api.NewRouter(handler, cfg)
	srv := &http.Server{Handler: router.SetupChi()}
*/
package api
