// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

/*
Package api provides the HTTP interface of GameSphere using the Chi router.

# Endpoints

	GET  /health              liveness, {"status":"ok","timestamp":...}
	POST /matchmaking/score   match quality score, 422 when too low
	POST /recommend           recommendations, X-API-Key when configured
	POST /ai/recommend        recommendations for the bearer token subject
	GET  /metrics             Prometheus metrics
	GET  /swagger/*           API documentation

/ai/recommend is mounted only when the gateway is enabled.

# Errors

Every error body has the form {"detail": "..."}. Validation failures return
422 and add the failing fields:

	{"detail": "Validation failed.", "errors": [{"field": "player_skill", "tag": "max", ...}]}

Unexpected failures and panics are logged with the request id and answered
with an opaque 500 {"detail": "Internal server error."}.

# Middleware

Global: request id, real IP, panic recovery, CORS. Scoring routes add a
per-IP rate limit, security headers and Prometheus request metrics.
*/
package api
