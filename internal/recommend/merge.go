// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package recommend

import "sort"

// ScoredSource is one input to score fusion.
type ScoredSource struct {
	Scores *ScoreMap
	Weight float64
	Reason string
}

// MergeGameScores fuses sources into a ranked list of at most limit games.
//
// Each game's combined score is the maximum of its weighted scores across
// sources. Sources are visited in order, and games tied on score keep the
// order in which they were first inserted. The reason comes from the first
// source that scored the game.
func MergeGameScores(sources []ScoredSource, limit int) []RecommendationItem {
	combined := NewScoreMap(0)
	for _, src := range sources {
		src.Scores.Each(func(id string, score float64) {
			existing, _ := combined.Get(id)
			combined.Set(id, max(existing, score*src.Weight))
		})
	}

	items := make([]RecommendationItem, 0, combined.Len())
	combined.Each(func(id string, score float64) {
		items = append(items, RecommendationItem{
			ID:     id,
			Score:  score,
			Reason: reasonFor(sources, id),
		})
	})

	return rankTop(items, limit)
}

func reasonFor(sources []ScoredSource, id string) string {
	for _, src := range sources {
		if src.Scores.Has(id) {
			return src.Reason
		}
	}
	return ""
}

// rankTop stably sorts items by descending score, truncates to limit and
// rounds the surviving scores.
func rankTop(items []RecommendationItem, limit int) []RecommendationItem {
	items = sortTop(items, limit)
	for i := range items {
		items[i].Score = Round3(items[i].Score)
	}
	return items
}

// sortTop stably sorts items by descending score and truncates to limit.
func sortTop(items []RecommendationItem, limit int) []RecommendationItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
