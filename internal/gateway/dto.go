// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package gateway

import "github.com/tomtom215/gamesphere/internal/recommend"

// GameHistoryDTO is a history entry as sent by account-facing clients.
type GameHistoryDTO struct {
	GameID      string   `json:"gameId" validate:"required"`
	HoursPlayed *float64 `json:"hoursPlayed,omitempty" validate:"omitempty,gte=0"`
	Liked       *bool    `json:"liked,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// PreferencesDTO carries declared tastes.
type PreferencesDTO struct {
	Genres    []string `json:"genres,omitempty"`
	Modes     []string `json:"modes,omitempty"`
	Platforms []string `json:"platforms,omitempty"`
	Playstyle []string `json:"playstyle,omitempty"`
	FreeText  *string  `json:"freeText,omitempty"`
	Region    *string  `json:"region,omitempty"`
}

// MatchSuccessDTO is a past match outcome with a teammate.
type MatchSuccessDTO struct {
	TeammateID   string  `json:"teammateId" validate:"required"`
	GameID       string  `json:"gameId" validate:"required"`
	SuccessScore float64 `json:"successScore" validate:"gte=0,lte=1"`
}

// CommunityProfileDTO is a peer profile.
type CommunityProfileDTO struct {
	UserID      string           `json:"userId" validate:"required"`
	History     []GameHistoryDTO `json:"history" validate:"required,dive"`
	Preferences *PreferencesDTO  `json:"preferences,omitempty"`
}

// GameCatalogDTO is a candidate game. Title must be present but may be empty.
type GameCatalogDTO struct {
	GameID string   `json:"gameId" validate:"required"`
	Title  *string  `json:"title" validate:"required"`
	Tags   []string `json:"tags,omitempty"`
	Genres []string `json:"genres,omitempty"`
	Modes  []string `json:"modes,omitempty"`
}

// RecommendDTO is the body of POST /ai/recommend. The user id is not part
// of the body; it comes from the bearer token.
type RecommendDTO struct {
	UserHistory       []GameHistoryDTO      `json:"userHistory" validate:"required,dive"`
	Preferences       *PreferencesDTO       `json:"preferences,omitempty"`
	MatchSuccess      []MatchSuccessDTO     `json:"matchSuccess,omitempty" validate:"dive"`
	CommunityProfiles []CommunityProfileDTO `json:"communityProfiles,omitempty" validate:"dive"`
	GamesCatalog      []GameCatalogDTO      `json:"gamesCatalog,omitempty" validate:"dive"`
}

// Normalize converts the DTO into a scoring request for userID. Missing
// hours become 0, missing tag and preference lists become empty lists and
// missing optional values stay null, so that equal inputs always produce
// equal cache keys.
func (d *RecommendDTO) Normalize(userID string) *recommend.Request {
	req := &recommend.Request{
		UserID:            userID,
		UserHistory:       normalizeHistory(d.UserHistory),
		Preferences:       normalizePreferences(d.Preferences),
		MatchSuccess:      make([]recommend.MatchSuccessItem, 0, len(d.MatchSuccess)),
		CommunityProfiles: make([]recommend.CommunityProfile, 0, len(d.CommunityProfiles)),
		GamesCatalog:      make([]recommend.GameCatalogItem, 0, len(d.GamesCatalog)),
	}

	for _, m := range d.MatchSuccess {
		req.MatchSuccess = append(req.MatchSuccess, recommend.MatchSuccessItem{
			TeammateID:   m.TeammateID,
			GameID:       m.GameID,
			SuccessScore: m.SuccessScore,
		})
	}
	for i := range d.CommunityProfiles {
		p := &d.CommunityProfiles[i]
		req.CommunityProfiles = append(req.CommunityProfiles, recommend.CommunityProfile{
			UserID:      p.UserID,
			History:     normalizeHistory(p.History),
			Preferences: normalizePreferences(p.Preferences),
		})
	}
	for i := range d.GamesCatalog {
		g := &d.GamesCatalog[i]
		item := recommend.GameCatalogItem{
			GameID: g.GameID,
			Tags:   orEmpty(g.Tags),
			Genres: orEmpty(g.Genres),
			Modes:  orEmpty(g.Modes),
		}
		if g.Title != nil {
			item.Title = *g.Title
		}
		req.GamesCatalog = append(req.GamesCatalog, item)
	}
	return req
}

func normalizeHistory(items []GameHistoryDTO) []recommend.HistoryItem {
	out := make([]recommend.HistoryItem, 0, len(items))
	for i := range items {
		h := &items[i]
		hours := 0.0
		if h.HoursPlayed != nil {
			hours = *h.HoursPlayed
		}
		out = append(out, recommend.HistoryItem{
			GameID:      h.GameID,
			HoursPlayed: &hours,
			Liked:       h.Liked,
			Tags:        orEmpty(h.Tags),
		})
	}
	return out
}

func normalizePreferences(p *PreferencesDTO) *recommend.Preferences {
	if p == nil {
		return nil
	}
	return &recommend.Preferences{
		Genres:    orEmpty(p.Genres),
		Modes:     orEmpty(p.Modes),
		Platforms: orEmpty(p.Platforms),
		Playstyle: orEmpty(p.Playstyle),
		FreeText:  p.FreeText,
		Region:    p.Region,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
