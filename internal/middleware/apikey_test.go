// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
)

func TestAPIKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expected   string
		provided   string
		wantStatus int
	}{
		{"check disabled without key", "", "", http.StatusOK},
		{"check disabled ignores header", "", "anything", http.StatusOK},
		{"matching key", "s3cret", "s3cret", http.StatusOK},
		{"missing key", "s3cret", "", http.StatusUnauthorized},
		{"wrong key", "s3cret", "s3cre", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			handler := APIKey(tt.expected)(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/recommend", nil)
			if tt.provided != "" {
				req.Header.Set("x-api-key", tt.provided)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if !called {
					t.Error("next handler was not called")
				}
				return
			}
			if called {
				t.Error("next handler must not run on rejection")
			}

			var body DetailResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Detail != ErrMsgInvalidAPIKey {
				t.Errorf("detail = %q, want %q", body.Detail, ErrMsgInvalidAPIKey)
			}
		})
	}
}
