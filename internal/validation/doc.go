// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator is configured with WithRequiredStructEnabled
// and reports field names from json tags, so errors refer to the wire names
// clients sent:
//
//	type ScoreRequest struct {
//	    PlayerSkill *int `json:"player_skill" validate:"required,min=1,max=10"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    // verr.Errors()[0].Field == "player_skill"
//	}
//
// Nested slices validated with "dive" produce indexed paths such as
// "community_profiles[1].history[0].game_id".
package validation
