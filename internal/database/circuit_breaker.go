// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/vgtrends/internal/config"
	"github.com/tomtom215/vgtrends/internal/logging"
	"github.com/tomtom215/vgtrends/internal/metrics"
	"github.com/tomtom215/vgtrends/internal/models"
)

const storeBreakerName = "duckdb-store"

// CircuitBreakerStore wraps a Store so that a persistently failing database
// is rejected fast instead of queuing requests behind query timeouts.
// Rejections surface to callers as ordinary errors.
type CircuitBreakerStore struct {
	store Store
	cb    *gobreaker.CircuitBreaker[interface{}]
	name  string

	// rejectLog throttles warnings while the circuit is open.
	rejectLog *rate.Sometimes
}

// NewCircuitBreakerStore decorates store with a circuit breaker configured
// from cfg. The circuit opens once at least MinRequests have been observed in
// an Interval and the failure ratio reaches FailureRatio; it half-opens after
// Timeout.
func NewCircuitBreakerStore(store Store, cfg *config.BreakerConfig) *CircuitBreakerStore {
	name := storeBreakerName
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	minRequests := cfg.MinRequests
	ratio := cfg.FailureRatio

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= ratio
			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		// Bad input and abandoned requests say nothing about store health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, models.ErrInvalidRegion) ||
				errors.Is(err, models.ErrInvalidType)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &CircuitBreakerStore{
		store:     store,
		cb:        cb,
		name:      name,
		rejectLog: &rate.Sometimes{First: 1, Interval: 10 * time.Second},
	}
}

// State returns the current breaker state.
func (s *CircuitBreakerStore) State() gobreaker.State {
	return s.cb.State()
}

func (s *CircuitBreakerStore) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := s.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(s.name, "rejected").Inc()
			s.rejectLog.Do(func() {
				logging.Warn().Err(err).Str("breaker", s.name).Msg("[CIRCUIT BREAKER] Request rejected")
			})
			return nil, fmt.Errorf("store unavailable: %w", err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(s.name, "failure").Inc()
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(s.name, "success").Inc()
	return result, nil
}

// guarded runs a typed store call through the breaker.
func guarded[T any](s *CircuitBreakerStore, fn func() (T, error)) (T, error) {
	result, err := s.execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Ping is not guarded so health checks report the real database state.
func (s *CircuitBreakerStore) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *CircuitBreakerStore) TopGamesByYear(ctx context.Context, year, limit int) ([]models.TopGame, error) {
	return guarded(s, func() ([]models.TopGame, error) {
		return s.store.TopGamesByYear(ctx, year, limit)
	})
}

func (s *CircuitBreakerStore) TopGamesByRegionYear(ctx context.Context, region models.Region, year, limit int) ([]models.TopGame, error) {
	return guarded(s, func() ([]models.TopGame, error) {
		return s.store.TopGamesByRegionYear(ctx, region, year, limit)
	})
}

func (s *CircuitBreakerStore) AllYears(ctx context.Context) ([]int, error) {
	return guarded(s, func() ([]int, error) {
		return s.store.AllYears(ctx)
	})
}

func (s *CircuitBreakerStore) DistinctValues(ctx context.Context, catalog models.CatalogType) ([]string, error) {
	return guarded(s, func() ([]string, error) {
		return s.store.DistinctValues(ctx, catalog)
	})
}

func (s *CircuitBreakerStore) YearlyCountByType(ctx context.Context, catalog models.CatalogType, value string) ([]models.YearCount, error) {
	return guarded(s, func() ([]models.YearCount, error) {
		return s.store.YearlyCountByType(ctx, catalog, value)
	})
}

func (s *CircuitBreakerStore) TotalGamesPerYear(ctx context.Context) ([]models.YearCount, error) {
	return guarded(s, func() ([]models.YearCount, error) {
		return s.store.TotalGamesPerYear(ctx)
	})
}

func (s *CircuitBreakerStore) PercentSeries(ctx context.Context, catalog models.CatalogType, value string) ([]models.PercentPoint, error) {
	return guarded(s, func() ([]models.PercentPoint, error) {
		return s.store.PercentSeries(ctx, catalog, value)
	})
}

func (s *CircuitBreakerStore) CountriesForRegion(ctx context.Context, region models.Region, year int) ([]string, error) {
	return guarded(s, func() ([]string, error) {
		return s.store.CountriesForRegion(ctx, region, year)
	})
}

func (s *CircuitBreakerStore) CountriesGroupedByRegion(ctx context.Context) ([]models.RegionCountries, error) {
	return guarded(s, func() ([]models.RegionCountries, error) {
		return s.store.CountriesGroupedByRegion(ctx)
	})
}

func (s *CircuitBreakerStore) CategoriesForCountryYear(ctx context.Context, year int, countryCode string) ([]string, error) {
	return guarded(s, func() ([]string, error) {
		return s.store.CategoriesForCountryYear(ctx, year, countryCode)
	})
}

func (s *CircuitBreakerStore) TopTrendsByYearAndCategory(ctx context.Context, year int, category, countryCode string) ([]models.TrendRank, error) {
	return guarded(s, func() ([]models.TrendRank, error) {
		return s.store.TopTrendsByYearAndCategory(ctx, year, category, countryCode)
	})
}
