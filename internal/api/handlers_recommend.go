// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tomtom215/gamesphere/internal/auth"
	"github.com/tomtom215/gamesphere/internal/gateway"
	"github.com/tomtom215/gamesphere/internal/recommend"
)

// Recommend handles service-to-service recommendation requests.
//
// @Summary Recommend games and teammates
// @Description Scores the catalog by collaborative filtering and interest overlap, and ranks teammates from match outcomes or shared play.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body recommend.Request true "User history, preferences, community and catalog"
// @Success 200 {object} recommend.Response
// @Failure 401 {object} ErrorResponse "Invalid API key"
// @Failure 422 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommend.Request
	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, &req)
	if err != nil {
		respondInternalError(w, r, fmt.Errorf("recommend for %s: %w", req.UserID, err))
		return
	}

	h.publishRecommendationServed(r.Context(), req.UserID, gateway.SourceEngine, resp)
	respondJSON(w, http.StatusOK, resp)
}

// GatewayRecommend handles account-facing recommendation requests. The
// user is the subject of the bearer token; scorer failures are answered
// with heuristic fallback recommendations.
//
// @Summary Recommend games and teammates for the signed-in user
// @Description Normalizes the payload, serves a cached result when available, and otherwise asks the scoring service, falling back to interest-only recommendations when it fails.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body gateway.RecommendDTO true "User history, preferences, community and catalog"
// @Success 200 {object} recommend.Response
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 422 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse
// @Router /ai/recommend [post]
func (h *Handler) GatewayRecommend(w http.ResponseWriter, r *http.Request) {
	if h.gateway == nil {
		respondDetail(w, http.StatusNotFound, "Not Found")
		return
	}

	userID := auth.SubjectFromContext(r.Context())
	if userID == "" {
		respondDetail(w, http.StatusUnauthorized, auth.ErrMsgUnauthorized)
		return
	}

	var dto gateway.RecommendDTO
	if err := decodeJSON(w, r, &dto); err != nil {
		respondDecodeError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	resp, source, err := h.gateway.Recommend(ctx, userID, &dto)
	if err != nil {
		respondInternalError(w, r, fmt.Errorf("gateway recommend for %s: %w", userID, err))
		return
	}

	h.publishRecommendationServed(r.Context(), userID, source, resp)
	respondJSON(w, http.StatusOK, resp)
}
