// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package api

import (
	"time"

	"github.com/tomtom215/vgtrends/internal/cache"
	"github.com/tomtom215/vgtrends/internal/config"
	"github.com/tomtom215/vgtrends/internal/database"
)

// Result sizes for the sales top lists.
const (
	globalTopLimit = 10
	regionTopLimit = 5
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_sales.go: /api/sales endpoints
//   - handlers_trends.go: /api/trends endpoints
//   - handlers_health.go: /api/health
//   - query_executor.go: cache-first execution shared by data endpoints
type Handler struct {
	store     database.Store
	cache     *cache.Cache
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a handler over store. A nil responseCache disables
// response caching.
//
//	store := database.NewCircuitBreakerStore(db, &cfg.Breaker)
//	handler := api.NewHandler(store, cache.New(), cfg)
func NewHandler(store database.Store, responseCache *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		cache:     responseCache,
		config:    cfg,
		startTime: time.Now(),
	}
}
