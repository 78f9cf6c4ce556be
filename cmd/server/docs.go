// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

// Package main provides the GameSphere HTTP server
//
// @title GameSphere API
// @version 1.0
// @description Game and teammate recommendations and match quality scoring for the GameSphere platform.
// @description
// @description ## Features
// @description
// @description - **Hybrid Recommendations**: Collaborative filtering over community play history fused with interest matching
// @description - **Teammate Suggestions**: Ranked from past match outcomes, or from shared play when no outcomes exist
// @description - **Match Quality**: Skill, region and latency heuristic with a rejection threshold
// @description - **Gateway**: Authenticated, cached recommendations with a heuristic fallback
// @description
// @description ## Authentication
// @description
// @description `POST /recommend` requires the `x-api-key` header when the server is configured with `AI_API_KEY`.
// @description `POST /ai/recommend` requires an HS256 bearer token whose `sub` claim is the user id.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 120 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "detail": "Validation failed.",
// @description   "errors": [
// @description     {"field": "player_skill", "tag": "max", "param": "10", "message": "player_skill must be at most 10"}
// @description   ]
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/gamesphere/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared service key. Required only when AI_API_KEY is configured.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description HS256 JWT as "Bearer <token>". The sub claim is the user id.
//
// @tag.name Health
// @tag.description Liveness endpoint
//
// @tag.name Recommendations
// @tag.description Game and teammate recommendations
//
// @tag.name Matchmaking
// @tag.description Match quality scoring
package main
