// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package recommend

import "strings"

// ContentScorer scores catalog games by the share of the user's interests
// found in their tags, genres and modes.
type ContentScorer struct{}

// NewContentScorer creates a content scorer.
func NewContentScorer() *ContentScorer {
	return &ContentScorer{}
}

// Score returns |interests ∩ game terms| / |interests| for every unplayed
// catalog game with a non-empty overlap, in catalog order.
func (s *ContentScorer) Score(played map[string]struct{}, interests []string, catalog []GameCatalogItem) *ScoreMap {
	if len(catalog) == 0 || len(interests) == 0 {
		return NewScoreMap(0)
	}

	interestSet := make(map[string]struct{}, len(interests))
	for _, interest := range interests {
		interestSet[strings.ToLower(interest)] = struct{}{}
	}
	denominator := float64(max(1, len(interestSet)))

	scores := NewScoreMap(len(catalog))
	for i := range catalog {
		game := &catalog[i]
		if _, ok := played[game.GameID]; ok {
			continue
		}
		if overlap := countOverlap(interestSet, game); overlap > 0 {
			scores.Set(game.GameID, float64(overlap)/denominator)
		}
	}
	return scores
}

// countOverlap counts distinct interests present among the game's terms.
func countOverlap(interestSet map[string]struct{}, game *GameCatalogItem) int {
	matched := make(map[string]struct{})
	for _, group := range [][]string{game.Tags, game.Genres, game.Modes} {
		for _, term := range group {
			term = strings.ToLower(term)
			if _, ok := interestSet[term]; ok {
				matched[term] = struct{}{}
			}
		}
	}
	return len(matched)
}
