// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// TestRecordDBQuery tests database query metric recording
func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		err       error
		errType   string
	}{
		{name: "success", operation: "top_games_by_year"},
		{name: "timeout", operation: "all_years", err: fmt.Errorf("failed: %w", context.DeadlineExceeded), errType: "timeout"},
		{name: "canceled", operation: "distinct_values", err: context.Canceled, errType: "canceled"},
		{name: "query error", operation: "percent_series", err: errors.New("Binder Error"), errType: "query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before float64
			if tt.err != nil {
				before = testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, "game_sales", tt.errType))
			}

			RecordDBQuery(tt.operation, "game_sales", 5*time.Millisecond, tt.err)

			if tt.err == nil {
				return
			}
			after := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, "game_sales", tt.errType))
			if after != before+1 {
				t.Errorf("DBQueryErrors{%s} = %v, want %v", tt.errType, after, before+1)
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/sales/years", "200"))

	RecordAPIRequest("GET", "/api/sales/years", "200", 12*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/sales/years", "200"))
	if after != before+1 {
		t.Errorf("APIRequestsTotal = %v, want %v", after, before+1)
	}
}

// histogramCount reads the sample count of one histogram series.
func histogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	var m dto.Metric
	if err := o.(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordAPIRequest_ObservesDuration(t *testing.T) {
	series := APIRequestDuration.WithLabelValues("GET", "/api/trends/countries")
	before := histogramCount(t, series)

	RecordAPIRequest("GET", "/api/trends/countries", "200", 3*time.Millisecond)
	RecordAPIRequest("GET", "/api/trends/countries", "500", 40*time.Millisecond)

	if got := histogramCount(t, series); got != before+2 {
		t.Errorf("sample count = %d, want %d", got, before+2)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordSeed(t *testing.T) {
	loadedBefore := testutil.ToFloat64(SeedRecords.WithLabelValues("trends", "loaded"))
	skippedBefore := testutil.ToFloat64(SeedRecords.WithLabelValues("trends", "skipped"))

	RecordSeed("trends", 10, 2)

	if got := testutil.ToFloat64(SeedRecords.WithLabelValues("trends", "loaded")); got != loadedBefore+10 {
		t.Errorf("loaded = %v, want %v", got, loadedBefore+10)
	}
	if got := testutil.ToFloat64(SeedRecords.WithLabelValues("trends", "skipped")); got != skippedBefore+2 {
		t.Errorf("skipped = %v, want %v", got, skippedBefore+2)
	}
}
