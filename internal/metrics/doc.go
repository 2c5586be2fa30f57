// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

/*
Package metrics provides Prometheus metrics collection and export for observability.

The package provides metrics for:
  - HTTP request latency and throughput
  - DuckDB query performance per aggregation
  - Response cache hit/miss rates and size
  - Circuit breaker state transitions around the store
  - Dataset seeding (records loaded and skipped)

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:3000/metrics

All collectors are registered on the default registry through promauto.
*/
package metrics
