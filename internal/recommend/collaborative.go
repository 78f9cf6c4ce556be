// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package recommend

import (
	"math"
	"sort"
)

// CollaborativeScorer predicts affinity for unplayed games from peers with
// similar play patterns (user-based CF over a dense, request-scoped matrix).
type CollaborativeScorer struct {
	affinity AffinityConfig
}

// NewCollaborativeScorer creates a scorer using the given affinity constants.
func NewCollaborativeScorer(cfg AffinityConfig) *CollaborativeScorer {
	return &CollaborativeScorer{affinity: cfg}
}

// Affinity maps a single history entry into [0,1].
func (s *CollaborativeScorer) Affinity(item *HistoryItem) float64 {
	score := math.Min(1, item.Hours()/s.affinity.HoursSaturation)
	if item.Liked != nil {
		if *item.Liked {
			score = 1
		} else {
			score = math.Min(score, s.affinity.DislikeCap)
		}
	}
	return score
}

// Score returns predicted affinities for games absent from the requester's
// row, keyed and ordered by sorted game id.
//
// The result is empty when there are no community profiles, no games at all,
// the requester's row is all zeros, or no peer has non-zero similarity.
func (s *CollaborativeScorer) Score(target []HistoryItem, community []CommunityProfile) *ScoreMap {
	if len(community) == 0 {
		return NewScoreMap(0)
	}

	users := make([][]HistoryItem, 0, len(community)+1)
	users = append(users, target)
	for i := range community {
		users = append(users, community[i].History)
	}

	gameIDs := collectGameIDs(users)
	if len(gameIDs) == 0 {
		return NewScoreMap(0)
	}
	column := make(map[string]int, len(gameIDs))
	for i, id := range gameIDs {
		column[id] = i
	}

	matrix := s.buildMatrix(users, column)

	targetRow := matrix[0]
	if norm(targetRow) == 0 {
		return NewScoreMap(0)
	}

	similarities := make([]float64, len(community))
	anySimilar := false
	for i := range similarities {
		similarities[i] = cosineSimilarity(targetRow, matrix[i+1])
		if similarities[i] != 0 {
			anySimilar = true
		}
	}
	if !anySimilar {
		return NewScoreMap(0)
	}

	scores := NewScoreMap(len(gameIDs))
	for col, gameID := range gameIDs {
		if targetRow[col] > 0 {
			continue
		}
		var numerator, denominator float64
		for i, sim := range similarities {
			rating := matrix[i+1][col]
			if rating > 0 {
				numerator += sim * rating
				denominator += sim
			}
		}
		if denominator > 0 {
			scores.Set(gameID, numerator/denominator)
		}
	}
	return scores
}

// buildMatrix fills one row per user, keeping the maximum affinity when a
// user lists the same game more than once.
func (s *CollaborativeScorer) buildMatrix(users [][]HistoryItem, column map[string]int) [][]float64 {
	matrix := make([][]float64, len(users))
	for u, history := range users {
		row := make([]float64, len(column))
		for i := range history {
			col := column[history[i].GameID]
			if a := s.Affinity(&history[i]); a > row[col] {
				row[col] = a
			}
		}
		matrix[u] = row
	}
	return matrix
}

// collectGameIDs returns the sorted union of game ids across histories.
func collectGameIDs(users [][]HistoryItem) []string {
	set := make(map[string]struct{})
	for _, history := range users {
		for i := range history {
			set[history[i].GameID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
