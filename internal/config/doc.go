// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

/*
Package config provides centralized configuration management for VGTrends.

Configuration is layered with koanf in order of increasing priority:

 1. Built-in defaults (see defaultConfig)
 2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/vgtrends/config.yaml)
 3. Environment variables

# Configuration Structure

  - DatabaseConfig: DuckDB path and tuning
  - ServerConfig: HTTP bind address and timeouts
  - LoggingConfig: zerolog level, format, caller info
  - SecurityConfig: rate limiting and CORS
  - SeedConfig: dataset files and seed-on-start behavior
  - BreakerConfig: circuit breaker around store queries

# Environment Variables

Database:
  - DUCKDB_PATH: database file (default: /data/vgtrends.duckdb)
  - DUCKDB_MAX_MEMORY: memory limit (default: 1GB)
  - DUCKDB_THREADS: worker threads (default: NumCPU)

HTTP Server:
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_PORT: listen port (default: 3000)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Security:
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: comma-separated list

Seeding:
  - SEED_GAMES_FILE, SEED_TRENDS_FILE, SEED_ON_START

Circuit breaker:
  - BREAKER_ENABLED, BREAKER_MIN_REQUESTS, BREAKER_FAILURE_RATIO, BREAKER_TIMEOUT

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config
