// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

// @title VGTrends API
// @version 1.0
// @description Video game sales and Google search trends aggregations for dashboard charts.
// @description
// @description Successful responses are cached in memory for the life of the process.
// @description Errors use the body {"error": "message"}; unmatched routes return plain text "Page not found".
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/vgtrends/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3000
// @BasePath /api
// @schemes http https
//
// @tag.name Sales
// @tag.description Video game sales aggregations
//
// @tag.name Trends
// @tag.description Google search trends aggregations
//
// @tag.name Health
// @tag.description Liveness and cache statistics
package main
