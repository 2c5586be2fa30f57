// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vgtrends/internal/metrics"
)

// cacheType labels the cache metrics.
const cacheType = "response"

// Cache is a thread-safe map from request keys to encoded response bodies.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]byte

	hits   atomic.Int64
	misses atomic.Int64
}

// Stats is a point-in-time snapshot of cache activity.
type Stats struct {
	Hits      int64
	Misses    int64
	TotalKeys int64
}

// New creates an empty cache.
func New() *Cache {
	metrics.CacheSize.WithLabelValues(cacheType).Set(0)
	return &Cache{entries: make(map[string][]byte)}
}

// Get returns the body stored under key. The returned slice must not be
// modified.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	body, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.misses.Add(1)
		metrics.CacheMisses.WithLabelValues(cacheType).Inc()
		return nil, false
	}
	c.hits.Add(1)
	metrics.CacheHits.WithLabelValues(cacheType).Inc()
	return body, true
}

// Set stores a copy of body under key. A later Set for the same key
// replaces the entry; callers only ever store identical bodies for a key.
func (c *Cache) Set(key string, body []byte) {
	stored := make([]byte, len(body))
	copy(stored, body)

	c.mu.Lock()
	c.entries[key] = stored
	n := len(c.entries)
	c.mu.Unlock()

	metrics.CacheSize.WithLabelValues(cacheType).Set(float64(n))
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string][]byte)
	c.mu.Unlock()

	metrics.CacheSize.WithLabelValues(cacheType).Set(0)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a snapshot of hits, misses and entry count.
func (c *Cache) GetStats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		TotalKeys: int64(c.Len()),
	}
}

// HitRate returns the cache hit rate as a percentage
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// GenerateKey builds a cache key from an endpoint name and its normalized
// parameters. Parameters that cannot be encoded return an error and the
// caller should skip the cache.
func GenerateKey(endpoint string, params interface{}) (string, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("cache key for %s: %w", endpoint, err)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", endpoint, hash[:16]), nil
}
