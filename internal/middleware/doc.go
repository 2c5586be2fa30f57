// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

/*
Package middleware provides HTTP middleware shared by the API router.

Components:

  - RequestID: accepts or generates an X-Request-ID and places it in the
    logging context
  - AccessLog: one structured log line per request
  - PrometheusMetrics: request count, latency and in-flight gauge

All three use the http.HandlerFunc wrapping form; the api package adapts
them to chi with its chiMiddleware helper:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Metrics and access logs label requests by the matched chi route pattern
(for example /api/sales/region/{region}/{year}) rather than the raw path,
which keeps label cardinality bounded. Requests that match no route are
labelled "unmatched".
*/
package middleware
