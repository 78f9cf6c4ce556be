// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package api

import (
	"context"

	"github.com/tomtom215/gamesphere/internal/events"
	"github.com/tomtom215/gamesphere/internal/matchmaking"
	"github.com/tomtom215/gamesphere/internal/recommend"
)

// publishMatchScored publishes the outcome of a match evaluation. A nil
// result means the match was rejected.
//
// Publishing is asynchronous and never affects the response.
func (h *Handler) publishMatchScored(ctx context.Context, in matchmaking.Input, result *matchmaking.Result) {
	event := events.NewMatchScoredEvent()
	event.PlayerSkill = in.PlayerSkill
	event.OpponentSkill = in.OpponentSkill
	event.SameRegion = in.SameRegion
	event.LatencyMs = in.LatencyMs
	if result != nil {
		event.Accepted = true
		event.Score = result.Score
	}
	events.PublishAsync(ctx, h.publisher, events.TopicMatchScored, event)
}

// publishRecommendationServed publishes the ids of a served response.
func (h *Handler) publishRecommendationServed(ctx context.Context, userID, source string, resp *recommend.Response) {
	event := events.NewRecommendationServedEvent(userID, source)
	event.Games = itemIDs(resp.Games)
	event.Teammates = itemIDs(resp.Teammates)
	event.Interests = len(resp.ExtractedInterests)
	events.PublishAsync(ctx, h.publisher, events.TopicRecommendationServed, event)
}

func itemIDs(items []recommend.RecommendationItem) []string {
	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	return ids
}
