// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

// Package matchmaking scores the quality of a proposed player-vs-player match
// from skill gap, latency and region. Matches scoring below the configured
// threshold are rejected with ErrMatchQualityTooLow.
package matchmaking
