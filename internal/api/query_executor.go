// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/vgtrends/internal/cache"
	"github.com/tomtom215/vgtrends/internal/logging"
	"github.com/tomtom215/vgtrends/internal/models"
)

// QueryFunc computes the response value for a request whose parameters have
// already been validated. The value must be JSON-serializable.
type QueryFunc func(ctx context.Context) (interface{}, error)

// executeCached implements the cache-first flow shared by every data
// endpoint:
//
//  1. Build the cache key from endpoint and normalized params
//  2. On a hit, write the cached bytes verbatim
//  3. On a miss, run query, encode, cache and write
//
// Only successful results are cached. A key that cannot be built skips the
// cache for this request.
func (h *Handler) executeCached(w http.ResponseWriter, r *http.Request, endpoint string, params interface{}, query QueryFunc) {
	if h.store == nil {
		respondServerError(w, r, endpoint, errors.New("store not configured"))
		return
	}

	var cacheKey string
	if h.cache != nil {
		key, err := cache.GenerateKey(endpoint, params)
		if err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Str("endpoint", endpoint).Msg("Skipping response cache")
		} else {
			cacheKey = key
			if body, found := h.cache.Get(cacheKey); found {
				writeJSONBody(w, http.StatusOK, body)
				return
			}
		}
	}

	data, err := query(r.Context())
	if err != nil {
		h.respondQueryError(w, r, endpoint, err)
		return
	}

	body, err := json.Marshal(data)
	if err != nil {
		respondServerError(w, r, endpoint, err)
		return
	}

	if cacheKey != "" {
		h.cache.Set(cacheKey, body)
	}
	writeJSONBody(w, http.StatusOK, body)
}

// respondQueryError maps input errors surfaced by the store to 400 and
// everything else to 500.
func (h *Handler) respondQueryError(w http.ResponseWriter, r *http.Request, endpoint string, err error) {
	var unknown *UnknownValueError
	switch {
	case errors.As(err, &unknown):
		respondError(w, http.StatusBadRequest, unknown.Error())
	case errors.Is(err, models.ErrInvalidRegion), errors.Is(err, models.ErrInvalidType):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondServerError(w, r, endpoint, err)
	}
}

// pathParam returns a decoded chi URL parameter. chi matches on the escaped
// path when one is present, so its parameters may still be percent-encoded.
func pathParam(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}
