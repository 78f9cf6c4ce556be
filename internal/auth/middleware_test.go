// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMiddleware_Authenticate(t *testing.T) {
	m := newTestManager(t)
	token, err := m.GenerateToken("user-42", "")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantSub    string
	}{
		{"valid bearer", "Bearer " + token, http.StatusOK, "user-42"},
		{"lowercase scheme", "bearer " + token, http.StatusOK, "user-42"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"basic scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, ""},
		{"no token", "Bearer", http.StatusUnauthorized, ""},
		{"tampered", "Bearer " + token + "x", http.StatusUnauthorized, ""},
	}

	mw := NewMiddleware(m)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotSub string
			handler := mw.Authenticate(func(w http.ResponseWriter, r *http.Request) {
				gotSub = SubjectFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/ai/recommend", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if gotSub != tt.wantSub {
				t.Errorf("subject = %q, want %q", gotSub, tt.wantSub)
			}
			if tt.wantStatus == http.StatusUnauthorized && !strings.Contains(rec.Body.String(), `"detail":"Unauthorized"`) {
				t.Errorf("body = %s", rec.Body.String())
			}
		})
	}
}

func TestSubjectFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if sub := SubjectFromContext(req.Context()); sub != "" {
		t.Errorf("SubjectFromContext() = %q, want empty", sub)
	}
	if _, ok := ClaimsFromContext(req.Context()); ok {
		t.Error("ClaimsFromContext() ok = true on bare context")
	}
}
