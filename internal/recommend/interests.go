// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package recommend

import "strings"

// DefaultMaxInterests caps the extracted interest list.
const DefaultMaxInterests = 20

// ExtractInterests builds the content-matching vocabulary for a user.
//
// Sources are read in a fixed order: preference genres, modes, platforms,
// playstyle, then free-text tokens, then history tags. Entries are
// lowercased, deduplicated at their first position and capped at limit.
// A non-positive limit means DefaultMaxInterests.
func ExtractInterests(prefs *Preferences, history []HistoryItem, limit int) []string {
	if limit <= 0 {
		limit = DefaultMaxInterests
	}

	var raw []string
	if prefs != nil {
		for _, group := range [][]string{prefs.Genres, prefs.Modes, prefs.Platforms, prefs.Playstyle} {
			for _, v := range group {
				raw = append(raw, strings.ToLower(v))
			}
		}
		if prefs.FreeText != nil && *prefs.FreeText != "" {
			raw = append(raw, Tokenize(*prefs.FreeText)...)
		}
	}
	for i := range history {
		for _, tag := range history[i].Tags {
			raw = append(raw, strings.ToLower(tag))
		}
	}

	seen := make(map[string]struct{}, len(raw))
	interests := make([]string, 0, min(len(raw), limit))
	for _, v := range raw {
		if v == "" || IsStopword(v) {
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
