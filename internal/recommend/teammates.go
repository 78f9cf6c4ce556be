// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package recommend

// TeammateMode identifies which signal ranked the teammates.
type TeammateMode string

const (
	TeammateModeNone     TeammateMode = "none"
	TeammateModeOutcomes TeammateMode = "outcomes"
	TeammateModeOverlap  TeammateMode = "overlap"
)

// RecommendTeammates ranks at most limit teammates.
//
// Match outcomes take precedence: when any are present, teammates are ranked
// by their average success score and community profiles are ignored.
// Otherwise profiles are ranked by the share of the requester's games they
// have also played. With neither input the result is empty.
func RecommendTeammates(matchSuccess []MatchSuccessItem, community []CommunityProfile, history []HistoryItem, limit int) ([]RecommendationItem, TeammateMode) {
	if len(matchSuccess) > 0 {
		return rankTop(averageOutcomes(matchSuccess), limit), TeammateModeOutcomes
	}
	if len(community) == 0 {
		return []RecommendationItem{}, TeammateModeNone
	}
	return rankByOverlap(community, history, limit), TeammateModeOverlap
}

// averageOutcomes averages success scores per teammate in first-seen order.
func averageOutcomes(matchSuccess []MatchSuccessItem) []RecommendationItem {
	type tally struct {
		sum   float64
		count int
	}
	order := make([]string, 0, len(matchSuccess))
	tallies := make(map[string]*tally, len(matchSuccess))
	for i := range matchSuccess {
		item := &matchSuccess[i]
		t, ok := tallies[item.TeammateID]
		if !ok {
			t = &tally{}
			tallies[item.TeammateID] = t
			order = append(order, item.TeammateID)
		}
		t.sum += item.SuccessScore
		t.count++
	}

	items := make([]RecommendationItem, 0, len(order))
	for _, id := range order {
		t := tallies[id]
		items = append(items, RecommendationItem{
			ID:     id,
			Score:  t.sum / float64(t.count),
			Reason: ReasonStrongOutcomes,
		})
	}
	return items
}

func rankByOverlap(community []CommunityProfile, history []HistoryItem, limit int) []RecommendationItem {
	targetGames := make(map[string]struct{}, len(history))
	for i := range history {
		targetGames[history[i].GameID] = struct{}{}
	}
	denominator := float64(max(1, len(targetGames)))

	scores := NewScoreMap(len(community))
	for i := range community {
		profile := &community[i]
		shared := make(map[string]struct{})
		for j := range profile.History {
			id := profile.History[j].GameID
			if _, ok := targetGames[id]; ok {
				shared[id] = struct{}{}
			}
		}
		if len(shared) > 0 {
			scores.Set(profile.UserID, float64(len(shared))/denominator)
		}
	}

	items := make([]RecommendationItem, 0, scores.Len())
	scores.Each(func(id string, score float64) {
		items = append(items, RecommendationItem{ID: id, Score: score, Reason: ReasonSimilarInterests})
	})
	return rankTop(items, limit)
}
