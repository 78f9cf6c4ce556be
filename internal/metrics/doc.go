// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

/*
Package metrics provides Prometheus metrics for the GameSphere scoring service.

All collectors are registered with the default registry through promauto and
exposed at /metrics:

	curl http://localhost:8000/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Requests by method, endpoint and status code (counter)
  - api_request_duration_seconds: Request latency (histogram)
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limiter rejections (counter)

Recommendation Metrics:
  - recommendations_served_total: Responses by source (engine, cache, remote, fallback)
  - recommendation_duration_seconds: Scoring latency (histogram)
  - recommendation_items: List sizes by kind (games, teammates)
  - recommendation_teammate_mode_total: Teammate ranking mode per request

Match Metrics:
  - match_scores_total: Evaluations by result (accepted, rejected)
  - match_score_value: Accepted score distribution (histogram)

Cache, circuit breaker and event metrics follow the same naming scheme:
cache_hits_total, circuit_breaker_state, events_published_total, and so on.

# Usage

	start := time.Now()
	resp, err := engine.Recommend(ctx, req)
	metrics.RecordRecommendationServed("engine")
	metrics.RecordAPIRequest("POST", "/recommend", "200", time.Since(start))
*/
package metrics
