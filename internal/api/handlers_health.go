// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/vgtrends/internal/models"
)

// healthPingTimeout bounds the database ping in health checks.
const healthPingTimeout = 2 * time.Second

// Health handles GET /api/health
//
// @Summary Service health
// @Description Database connectivity, uptime and response cache statistics. A failing database reports status "degraded".
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	dbConnected := h.store != nil && h.store.Ping(ctx) == nil

	health := models.HealthStatus{
		Status:        "healthy",
		Database:      "connected",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}
	if !dbConnected {
		health.Status = "degraded"
		health.Database = "disconnected"
	}

	if h.cache != nil {
		stats := h.cache.GetStats()
		health.Cache = models.CacheStats{
			Hits:    stats.Hits,
			Misses:  stats.Misses,
			Entries: int(stats.TotalKeys),
			HitRate: h.cache.HitRate(),
		}
	}

	respondJSON(w, http.StatusOK, health)
}
