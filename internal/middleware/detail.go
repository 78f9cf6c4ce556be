// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package middleware

import (
	"net/http"

	json "github.com/goccy/go-json"
)

// DetailResponse is the error body shared by all endpoints.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// WriteDetail writes {"detail": msg} with the given status.
func WriteDetail(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(DetailResponse{Detail: msg}) //nolint:errcheck // status already sent
}
