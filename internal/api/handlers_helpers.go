// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vgtrends/internal/logging"
	"github.com/tomtom215/vgtrends/internal/metrics"
	"github.com/tomtom215/vgtrends/internal/models"
	"github.com/tomtom215/vgtrends/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON encodes data and writes it with the given status.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSONBody(w, status, body)
}

// writeJSONBody writes an already encoded JSON body with caching headers.
func writeJSONBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	if status == http.StatusOK {
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Header().Set("ETag", generateETag(body))
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}
	w.Header().Set("Vary", "Accept-Encoding")

	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondError writes {"error": message}.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.ErrorResponse{Error: message})
}

// respondServerError logs err against the request and writes a generic 500.
func respondServerError(w http.ResponseWriter, r *http.Request, endpoint string, err error) {
	logging.CtxErr(r.Context(), err).
		Str("endpoint", endpoint).
		Str("path", sanitizeLogValue(r.URL.Path)).
		Msg("API query failed")
	respondError(w, http.StatusInternalServerError, serverErrorMessage)
}

// validateRequest validates a parameter struct and, on failure, writes the
// 400 response. It reports whether the request may proceed.
//
//	params := yearParams{Year: chi.URLParam(r, "year")}
//	if !validateRequest(w, "sales.global", &params) {
//	    return
//	}
func validateRequest(w http.ResponseWriter, endpoint string, params interface{}) bool {
	verr := validation.ValidateStruct(params)
	if verr == nil {
		return true
	}
	metrics.APIValidationFailures.WithLabelValues(endpoint).Inc()
	respondError(w, http.StatusBadRequest, verr.Error())
	return false
}

// mustAtoi converts a string already validated as four digits.
func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Sprintf("api: unvalidated integer %q", s))
	}
	return n
}
