// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// namespace prefixes every collector, e.g. vgtrends_api_requests_total.
const namespace = "vgtrends"

var latencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// Store collectors, labelled by operation (query method) and table.
var (
	DBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "duckdb",
		Name:      "query_duration_seconds",
		Help:      "Latency of read queries against the sales and trends tables.",
		Buckets:   latencyBuckets,
	}, []string{"operation", "table"})

	DBQueryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "duckdb",
		Name:      "query_errors_total",
		Help:      "Failed queries by error class (timeout, canceled, query).",
	}, []string{"operation", "table", "error_type"})
)

// HTTP collectors. The endpoint label is the chi route pattern.
var (
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Requests served, by method, route pattern and status code.",
	}, []string{"method", "endpoint", "status_code"})

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "Time from first byte in to last byte out.",
		Buckets:   latencyBuckets,
	}, []string{"method", "endpoint"})

	APIActiveRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "active_requests",
		Help:      "Requests currently in flight.",
	})

	APIValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "validation_failures_total",
		Help:      "Requests rejected with 400 before any query ran.",
	}, []string{"endpoint"})
)

// Response cache collectors.
var (
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Lookups answered from the response cache.",
	}, []string{"cache_type"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Lookups that fell through to the store.",
	}, []string{"cache_type"})

	CacheSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "entries",
		Help:      "Encoded responses currently held.",
	}, []string{"cache_type"})
)

// Circuit breaker collectors. State is 0 closed, 1 half-open, 2 open.
var (
	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "breaker",
		Name:      "state",
		Help:      "Current breaker state (0=closed, 1=half-open, 2=open).",
	}, []string{"name"})

	CircuitBreakerRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "breaker",
		Name:      "requests_total",
		Help:      "Calls through the breaker by result (success, failure, rejected).",
	}, []string{"name", "result"})

	CircuitBreakerTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "breaker",
		Name:      "transitions_total",
		Help:      "Breaker state changes.",
	}, []string{"name", "from", "to"})
)

// SeedRecords counts dataset rows by outcome (loaded, skipped).
var SeedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "seed",
	Name:      "records_total",
	Help:      "Dataset rows handled by the seeder.",
}, []string{"dataset", "outcome"})

// RecordDBQuery observes one store query and counts it as an error when err
// is non-nil.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err == nil {
		return
	}
	class := "query"
	if errors.Is(err, context.DeadlineExceeded) {
		class = "timeout"
	} else if errors.Is(err, context.Canceled) {
		class = "canceled"
	}
	DBQueryErrors.WithLabelValues(operation, table, class).Inc()
}

func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest moves the in-flight gauge up when inc is true and down
// otherwise.
func TrackActiveRequest(inc bool) {
	delta := -1.0
	if inc {
		delta = 1
	}
	APIActiveRequests.Add(delta)
}

// RecordSeed adds one seeding run's counts for dataset.
func RecordSeed(dataset string, loaded, skipped int) {
	SeedRecords.WithLabelValues(dataset, "loaded").Add(float64(loaded))
	SeedRecords.WithLabelValues(dataset, "skipped").Add(float64(skipped))
}
