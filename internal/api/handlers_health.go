// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package api

import (
	"net/http"
)

// healthTimestampLayout renders UTC time with microseconds and no zone suffix.
const healthTimestampLayout = "2006-01-02T15:04:05.000000"

// Health handles health check requests
//
// @Summary Service health
// @Description Returns "ok" and the current UTC time. No dependencies are probed.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(healthTimestampLayout),
	})
}
