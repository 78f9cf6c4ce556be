// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

// Package recommend implements the hybrid game and teammate recommender.
//
// # Pipeline
//
// A request is scored entirely from its own payload:
//
//  1. ExtractInterests builds a capped, first-seen-ordered vocabulary from
//     preferences, free text and history tags.
//  2. CollaborativeScorer builds a user x game affinity matrix (requester
//     first, columns in sorted game id order) and predicts unplayed games
//     from cosine-similar peers.
//  3. ContentScorer scores unplayed catalog games by interest overlap.
//  4. MergeGameScores fuses the two maps (max of weighted scores) and keeps
//     the top games.
//  5. RecommendTeammates ranks teammates by match outcomes, or by shared
//     games when no outcomes are supplied.
//
// Steps 2 and 3 are independent and run concurrently.
//
// # Ordering
//
// All tie-breaks are deterministic. ScoreMap remembers insertion order and
// every ranking uses a stable sort, so equal scores keep the order of
// sorted game ids (collaborative), catalog order (content), first-seen
// teammate order (outcomes) or community order (overlap).
//
// # Caching
//
// When enabled, responses are memoized in a TTL LRU keyed by CacheKey, the
// SHA-256 of a key-sorted rendering of the request.
//
// Fallback builds a degraded content-only response for callers whose
// remote scoring backend is unavailable.
package recommend
