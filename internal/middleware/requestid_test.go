// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/gamesphere/internal/logging"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantUUID bool
	}{
		{name: "generates when absent", wantUUID: true},
		{name: "preserves upstream id", incoming: "proxy-id-42"},
		{name: "empty header generates", incoming: "", wantUUID: true},
		{name: "oversized id replaced", incoming: strings.Repeat("a", 129), wantUUID: true},
		{name: "id with spaces replaced", incoming: "bad id", wantUUID: true},
		{name: "non-ascii id replaced", incoming: "id-\u00e9", wantUUID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctxID, logReqID, correlationID string
			handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
				ctxID = GetRequestID(r.Context())
				logReqID = logging.RequestIDFromContext(r.Context())
				correlationID = logging.CorrelationIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if tt.wantUUID {
				if _, err := uuid.Parse(got); err != nil {
					t.Errorf("response id %q is not a UUID: %v", got, err)
				}
			} else if got != tt.incoming {
				t.Errorf("response id = %q, want %q", got, tt.incoming)
			}
			if ctxID != got || logReqID != got {
				t.Errorf("context ids (%q, %q) do not match header %q", ctxID, logReqID, got)
			}
			if correlationID == "" {
				t.Error("expected a correlation id in context")
			}
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	handler := RequestID(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get(RequestIDHeader)
		if seen[id] {
			t.Fatalf("duplicate request id %s", id)
		}
		seen[id] = true
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id := GetRequestID(req.Context()); id != "" {
		t.Errorf("GetRequestID() = %q, want empty", id)
	}
}

func BenchmarkRequestID(b *testing.B) {
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		_ = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/recommend", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handler(httptest.NewRecorder(), req)
	}
}
