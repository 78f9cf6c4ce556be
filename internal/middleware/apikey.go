// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/tomtom215/gamesphere/internal/logging"
)

// APIKeyHeader is the header carrying the shared service key.
const APIKeyHeader = "X-API-Key"

// ErrMsgInvalidAPIKey is the detail returned for a missing or wrong key.
const ErrMsgInvalidAPIKey = "Invalid API key."

// APIKey returns middleware requiring the X-API-Key header to equal
// expected. An empty expected key disables the check.
func APIKey(expected string) func(http.HandlerFunc) http.HandlerFunc {
	want := []byte(expected)
	return func(next http.HandlerFunc) http.HandlerFunc {
		if expected == "" {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(APIKeyHeader))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				logging.Ctx(r.Context()).Warn().
					Str("path", r.URL.Path).
					Bool("key_present", len(got) > 0).
					Msg("rejected request with invalid API key")
				WriteDetail(w, http.StatusUnauthorized, ErrMsgInvalidAPIKey)
				return
			}
			next(w, r)
		}
	}
}
