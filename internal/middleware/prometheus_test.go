// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/gamesphere/internal/metrics"
)

func TestPrometheusMetrics_StatusCodes(t *testing.T) {
	codes := []int{http.StatusOK, http.StatusUnauthorized, http.StatusUnprocessableEntity, http.StatusInternalServerError}

	for _, code := range codes {
		t.Run(http.StatusText(code), func(t *testing.T) {
			handler := PrometheusMetrics(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(code)
			})
			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodPost, "/status-test", nil))

			if rec.Code != code {
				t.Errorf("status = %d, want %d", rec.Code, code)
			}
		})
	}
}

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return PrometheusMetrics(next.ServeHTTP)
	})
	r.Get("/players/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/players/{id}", "200")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/players/"+id, nil))
	}

	if got := testutil.ToFloat64(counter) - before; got != 3 {
		t.Errorf("route pattern counter delta = %v, want 3", got)
	}
}

func TestPrometheusMetrics_DefaultStatus(t *testing.T) {
	handler := PrometheusMetrics(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("body only"))
	})

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/implicit-ok", "200")
	before := testutil.ToFloat64(counter)

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/implicit-ok", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("implicit 200 counter delta = %v, want 1", got)
	}
}

func TestMetricsResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapper := &metricsResponseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	wrapper.WriteHeader(http.StatusNotFound)
	wrapper.WriteHeader(http.StatusInternalServerError)

	if wrapper.statusCode != http.StatusNotFound {
		t.Errorf("statusCode = %d, want 404", wrapper.statusCode)
	}
	if wrapper.Unwrap() != rec {
		t.Error("Unwrap() should return the wrapped writer")
	}
}
