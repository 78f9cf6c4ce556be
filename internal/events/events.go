// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics published by the service. The NATS subject is "<prefix>.<topic>".
const (
	TopicMatchScored          = "match.scored"
	TopicRecommendationServed = "recommend.served"
)

// MatchScoredEvent records the outcome of a match quality evaluation,
// including rejected matches.
type MatchScoredEvent struct {
	EventID       string    `json:"event_id"`
	OccurredAt    time.Time `json:"occurred_at"`
	PlayerSkill   int       `json:"player_skill"`
	OpponentSkill int       `json:"opponent_skill"`
	SameRegion    bool      `json:"same_region"`
	LatencyMs     int       `json:"latency_ms"`
	Accepted      bool      `json:"accepted"`
	Score         float64   `json:"score,omitempty"`
}

// RecommendationServedEvent records a recommendation response. Source is
// "engine", "cache", "remote" or "fallback".
type RecommendationServedEvent struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`
	UserID     string    `json:"user_id"`
	Source     string    `json:"source"`
	Games      []string  `json:"games"`
	Teammates  []string  `json:"teammates"`
	Interests  int       `json:"interests"`
}

// NewMatchScoredEvent stamps a new event with an id and the current time.
func NewMatchScoredEvent() *MatchScoredEvent {
	return &MatchScoredEvent{
		EventID:    uuid.New().String(),
		OccurredAt: time.Now().UTC(),
	}
}

// NewRecommendationServedEvent stamps a new event with an id and the current time.
func NewRecommendationServedEvent(userID, source string) *RecommendationServedEvent {
	return &RecommendationServedEvent{
		EventID:    uuid.New().String(),
		OccurredAt: time.Now().UTC(),
		UserID:     userID,
		Source:     source,
	}
}
