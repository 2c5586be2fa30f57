// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vgtrends/internal/logging"
)

func TestAccessLog_Levels(t *testing.T) {
	original := logging.Logger()
	t.Cleanup(func() { logging.SetLogger(original) })

	tests := []struct {
		status    int
		wantLevel string
	}{
		{http.StatusInternalServerError, "error"},
		{http.StatusNotFound, "warn"},
		{http.StatusBadRequest, "warn"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logging.SetLogger(logging.NewTestLogger(&buf))

		handler := RequestID(AccessLog(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.status)
		}))
		req := httptest.NewRequest(http.MethodGet, "/api/sales/years", nil)
		handler(httptest.NewRecorder(), req)

		var entry map[string]interface{}
		if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
			t.Fatalf("status %d: log line is not JSON: %v (%q)", tt.status, err, buf.String())
		}
		if entry["level"] != tt.wantLevel {
			t.Errorf("status %d: level = %v, want %s", tt.status, entry["level"], tt.wantLevel)
		}
		if entry["status"] != float64(tt.status) {
			t.Errorf("status field = %v, want %d", entry["status"], tt.status)
		}
		if entry["path"] != "/api/sales/years" {
			t.Errorf("path field = %v", entry["path"])
		}
		if id, _ := entry["request_id"].(string); id == "" {
			t.Error("expected request_id in access log")
		}
	}
}

func TestAccessLog_SuccessIsDebug(t *testing.T) {
	original := logging.Logger()
	t.Cleanup(func() { logging.SetLogger(original) })

	var buf bytes.Buffer
	logging.SetLogger(logging.NewTestLogger(&buf))

	handler := AccessLog(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// The global level is info by default, so debug lines are dropped.
	if strings.Contains(buf.String(), "HTTP request") {
		t.Errorf("unexpected access log for 200 at info level: %s", buf.String())
	}
}
