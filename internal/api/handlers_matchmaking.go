// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/gamesphere/internal/matchmaking"
	"github.com/tomtom215/gamesphere/internal/metrics"
)

// MatchScore handles match quality scoring.
//
// @Summary Score a proposed match
// @Description Combines skill gap, region and latency into a score in [0,1]. Matches scoring below the rejection threshold return 422.
// @Tags Matchmaking
// @Accept json
// @Produce json
// @Param request body MatchScoreRequest true "Proposed match"
// @Success 200 {object} matchmaking.Result
// @Failure 422 {object} ErrorResponse "Invalid input or match quality too low"
// @Failure 500 {object} ErrorResponse
// @Router /matchmaking/score [post]
func (h *Handler) MatchScore(w http.ResponseWriter, r *http.Request) {
	var req MatchScoreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, r, err)
		return
	}

	in := matchmaking.Input{
		PlayerSkill:   *req.PlayerSkill,
		OpponentSkill: *req.OpponentSkill,
		SameRegion:    req.sameRegion(),
		LatencyMs:     *req.LatencyMs,
	}

	result, err := h.matcher.Score(in)
	h.publishMatchScored(r.Context(), in, result)

	switch {
	case errors.Is(err, matchmaking.ErrMatchQualityTooLow):
		metrics.RecordMatchScore(0, false)
		respondDetail(w, http.StatusUnprocessableEntity, ErrMsgMatchQualityLow)
	case err != nil:
		respondInternalError(w, r, err)
	default:
		metrics.RecordMatchScore(result.Score, true)
		respondJSON(w, http.StatusOK, result)
	}
}
