// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

// Package services adapts VGTrends components to suture.Service.
//
// HTTPServerService turns http.Server's blocking ListenAndServe into a
// context-aware Serve: cancelling the context triggers Shutdown with a
// bounded drain period, and a listener failure is returned so the supervisor
// restarts the server.
package services
