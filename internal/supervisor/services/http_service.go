// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/vgtrends/internal/logging"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer is satisfied by *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService adapts an HTTPServer to suture.Service so the API can
// be restarted by the api-layer supervisor.
type HTTPServerService struct {
	server  HTTPServer
	drainIn time.Duration
}

// NewHTTPServerService uses defaultShutdownTimeout when drainIn <= 0.
func NewHTTPServerService(server HTTPServer, drainIn time.Duration) *HTTPServerService {
	if drainIn <= 0 {
		drainIn = defaultShutdownTimeout
	}
	return &HTTPServerService{server: server, drainIn: drainIn}
}

// Serve listens until ctx is canceled, then drains in-flight requests.
// A listener error is returned wrapped so suture restarts the service.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() { listenErr <- h.listen() }()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	// ctx is done; the drain gets a fresh deadline.
	drainCtx, cancel := context.WithTimeout(context.Background(), h.drainIn)
	defer cancel()

	logging.Info().Dur("timeout", h.drainIn).Msg("Shutting down HTTP server")
	if err := h.server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	<-listenErr
	return ctx.Err()
}

func (h *HTTPServerService) listen() error {
	if srv, ok := h.server.(*http.Server); ok {
		logging.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
	}
	err := h.server.ListenAndServe()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("http server failed: %w", err)
}

func (h *HTTPServerService) String() string {
	return "http-server"
}
