// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package config

import "time"

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
	Security SecurityConfig `koanf:"security"`
	Seed     SeedConfig     `koanf:"seed"`
	Breaker  BreakerConfig  `koanf:"breaker"`
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path        string `koanf:"path"`
	MaxMemory   string `koanf:"max_memory"`
	Threads     int    `koanf:"threads"`      // Number of DuckDB threads (0 = use NumCPU)
	SkipIndexes bool   `koanf:"skip_indexes"` // Skip index creation (fast test setup)
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// SecurityConfig holds request limiting and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// SeedConfig points at the static datasets loaded into the store.
//
// The files are JSON arrays in the raw export layout: vgsales rows use
// Name/Year/Genre/Platform/Publisher/*_Sales keys and trends rows use
// query_en/year/category_en/region/location/country_code/rank.
type SeedConfig struct {
	GamesFile  string `koanf:"games_file"`
	TrendsFile string `koanf:"trends_file"`
	// OnStart loads both files when the server starts against an empty store.
	OnStart bool `koanf:"on_start"`
}

// BreakerConfig configures the circuit breaker wrapping store queries.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
}

// IsProduction reports whether the server runs in production mode.
func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads configuration from defaults, an optional config file and the
// environment. See LoadWithKoanf for precedence rules.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
