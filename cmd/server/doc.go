// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

/*
Package main is the entry point for the VGTrends API server.

VGTrends serves read-only aggregations over two static datasets, video game
sales by title/platform/year and Google search trends by country/category/year,
to the dashboard's charts and world map.

# Startup

 1. Configuration: koanf v2 (defaults, optional YAML file, environment)
 2. Logging: zerolog, configured from the logging section
 3. Database: DuckDB opened at database.path
 4. Seeding: when seed.on_start is set and the store is empty, the configured
    vgsales and trends files are loaded before serving
 5. Store: the DuckDB store wrapped in a gobreaker circuit breaker
 6. HTTP: chi router with the response cache, served by the suture tree

	RootSupervisor ("vgtrends")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

# Configuration

Common environment variables:

	HTTP_PORT=3000
	DUCKDB_PATH=/data/vgtrends.duckdb
	SEED_ON_START=true
	SEED_GAMES_FILE=data/vgsales.json
	SEED_TRENDS_FILE=data/trends.json
	LOG_LEVEL=debug

# Signals

SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
in-flight requests for up to 10s, then the database is closed.
*/
package main
