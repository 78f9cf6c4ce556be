// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package recommend

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// fallbackSplit separates free-text words in degraded mode.
var fallbackSplit = regexp.MustCompile(`[^a-z0-9#+]+`)

// minFallbackInterestLen drops short entries from every interest source.
const minFallbackInterestLen = 3

// Fallback produces a degraded response without collaborative filtering.
// It is served when the remote scoring service is unreachable.
//
// Interests come from fallbackInterests, games are scored by interest
// overlap at full weight (capped at 1.0) and teammates only from match
// outcomes. Scores are not rounded.
func Fallback(req *Request, limits LimitsConfig) *Response {
	interests := fallbackInterests(req.Preferences, req.UserHistory, limits.MaxInterests)
	return &Response{
		Games:              fallbackGames(req.PlayedGames(), interests, req.GamesCatalog, limits.MaxGames),
		Teammates:          sortTop(averageOutcomes(req.MatchSuccess), limits.MaxTeammates),
		ExtractedInterests: interests,
	}
}

// fallbackInterests reads the same sources as ExtractInterests in the same
// order but keeps stopwords and drops any entry shorter than three
// characters, platform and genre names included.
func fallbackInterests(prefs *Preferences, history []HistoryItem, limit int) []string {
	if limit <= 0 {
		limit = DefaultMaxInterests
	}

	var raw []string
	if prefs != nil {
		for _, group := range [][]string{prefs.Genres, prefs.Modes, prefs.Platforms, prefs.Playstyle} {
			raw = append(raw, group...)
		}
		if prefs.FreeText != nil && *prefs.FreeText != "" {
			raw = append(raw, fallbackSplit.Split(strings.ToLower(*prefs.FreeText), -1)...)
		}
	}
	for i := range history {
		raw = append(raw, history[i].Tags...)
	}

	seen := make(map[string]struct{}, len(raw))
	interests := make([]string, 0, min(len(raw), limit))
	for _, v := range raw {
		v = strings.ToLower(v)
		if utf8.RuneCountInString(v) < minFallbackInterestLen {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		interests = append(interests, v)
		if len(interests) == limit {
			break
		}
	}
	return interests
}

func fallbackGames(played map[string]struct{}, interests []string, catalog []GameCatalogItem, limit int) []RecommendationItem {
	items := []RecommendationItem{}
	if len(catalog) == 0 || len(interests) == 0 {
		return items
	}

	interestSet := make(map[string]struct{}, len(interests))
	for _, interest := range interests {
		interestSet[strings.ToLower(interest)] = struct{}{}
	}
	denominator := float64(max(1, len(interestSet)))

	for i := range catalog {
		game := &catalog[i]
		if _, ok := played[game.GameID]; ok {
			continue
		}
		// Every matching term counts, including repeats across tags, genres and modes.
		matches := 0
		for _, group := range [][]string{game.Tags, game.Genres, game.Modes} {
			for _, term := range group {
				if _, ok := interestSet[strings.ToLower(term)]; ok {
					matches++
				}
			}
		}
		if matches > 0 {
			items = append(items, RecommendationItem{
				ID:     game.GameID,
				Score:  math.Min(1, float64(matches)/denominator),
				Reason: ReasonMatchesInterests,
			})
		}
	}
	return sortTop(items, limit)
}
