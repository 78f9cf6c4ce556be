// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package recommend

import (
	"math"
	"strconv"
)

// HistoryItem is one user's engagement with one game.
type HistoryItem struct {
	GameID string `json:"game_id" validate:"required"`

	// HoursPlayed is optional; nil counts as zero hours.
	HoursPlayed *float64 `json:"hours_played" validate:"omitempty,gte=0"`

	// Liked is an explicit like (true), dislike (false), or no signal (nil).
	Liked *bool `json:"liked"`

	Tags []string `json:"tags"`
}

// Hours returns the hours played, treating a missing value as zero.
func (h *HistoryItem) Hours() float64 {
	if h.HoursPlayed == nil {
		return 0
	}
	return *h.HoursPlayed
}

// Preferences are the declared tastes of a user.
type Preferences struct {
	Genres    []string `json:"genres"`
	Modes     []string `json:"modes"`
	Platforms []string `json:"platforms"`
	Playstyle []string `json:"playstyle"`
	FreeText  *string  `json:"free_text"`
	Region    *string  `json:"region"`
}

// CommunityProfile is a peer whose history feeds collaborative filtering
// and overlap-based teammate ranking.
type CommunityProfile struct {
	UserID      string        `json:"user_id" validate:"required"`
	History     []HistoryItem `json:"history" validate:"dive"`
	Preferences *Preferences  `json:"preferences"`
}

// GameCatalogItem is a game that can be scored by content matching.
type GameCatalogItem struct {
	GameID string   `json:"game_id" validate:"required"`
	Title  string   `json:"title"`
	Tags   []string `json:"tags"`
	Genres []string `json:"genres"`
	Modes  []string `json:"modes"`
}

// MatchSuccessItem is a historical outcome of playing with a teammate.
type MatchSuccessItem struct {
	TeammateID   string  `json:"teammate_id" validate:"required"`
	GameID       string  `json:"game_id" validate:"required"`
	SuccessScore float64 `json:"success_score" validate:"gte=0,lte=1"`
}

// Request is a recommendation request for a single user.
type Request struct {
	UserID            string             `json:"user_id" validate:"required"`
	UserHistory       []HistoryItem      `json:"user_history" validate:"dive"`
	Preferences       *Preferences       `json:"preferences"`
	MatchSuccess      []MatchSuccessItem `json:"match_success" validate:"dive"`
	CommunityProfiles []CommunityProfile `json:"community_profiles" validate:"dive"`
	GamesCatalog      []GameCatalogItem  `json:"games_catalog" validate:"dive"`
}

// PlayedGames returns the set of game ids in the requester's history.
func (r *Request) PlayedGames() map[string]struct{} {
	played := make(map[string]struct{}, len(r.UserHistory))
	for i := range r.UserHistory {
		played[r.UserHistory[i].GameID] = struct{}{}
	}
	return played
}

// RecommendationItem is a single ranked game or teammate.
type RecommendationItem struct {
	ID     string  `json:"id"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// Response is the result of a recommendation request.
type Response struct {
	Games              []RecommendationItem `json:"games"`
	Teammates          []RecommendationItem `json:"teammates"`
	ExtractedInterests []string             `json:"extracted_interests"`
}

// Reasons attached to recommendation items.
const (
	ReasonSimilarPlayers   = "Recommended by similar players."
	ReasonMatchesInterests = "Matches your interests."
	ReasonStrongOutcomes   = "Strong recent match performance."
	ReasonSimilarInterests = "Similar game interests."
)

// Round3 rounds x to three decimal places.
//
// Rounding works on the exact binary value of x, so ties in its decimal
// expansion go to the even digit: 0.0625 becomes 0.062, not 0.063.
// NaN and infinities are returned unchanged.
func Round3(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 3, 64), 64)
	if err != nil {
		return x
	}
	return v
}
