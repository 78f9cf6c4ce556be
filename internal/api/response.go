// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gamesphere/internal/logging"
	"github.com/tomtom215/gamesphere/internal/validation"
)

// ErrorResponse is the body of every error response. Errors is set only
// for validation failures.
type ErrorResponse struct {
	Detail string                  `json:"detail"`
	Errors []validation.FieldError `json:"errors,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// respondJSON writes data as JSON with the given status.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"` + ErrMsgInternal + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respondDetail writes {"detail": msg}.
func respondDetail(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, &ErrorResponse{Detail: msg})
}

// respondValidationError writes 422 with the failing fields.
func respondValidationError(w http.ResponseWriter, verr *validation.RequestValidationError) {
	respondJSON(w, http.StatusUnprocessableEntity, &ErrorResponse{
		Detail: ErrMsgValidation,
		Errors: verr.Errors(),
	})
}

// respondInternalError logs err with the request context and writes the
// opaque 500 body. Nothing about err reaches the client.
func respondInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Ctx(r.Context()).Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	respondDetail(w, http.StatusInternalServerError, ErrMsgInternal)
}
