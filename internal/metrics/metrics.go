// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total number of recommendation responses",
		},
		[]string{"source"}, // "engine", "cache", "remote", "fallback"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent computing a recommendation response",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	RecommendationItems = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_items",
			Help:    "Number of items in each recommendation list",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
		[]string{"kind"}, // "games", "teammates"
	)

	TeammateModeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_teammate_mode_total",
			Help: "Teammate ranking mode used per request",
		},
		[]string{"mode"}, // "outcomes", "overlap", "none"
	)

	// Match Quality Metrics
	MatchScoresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_scores_total",
			Help: "Total number of match quality evaluations",
		},
		[]string{"result"}, // "accepted", "rejected"
	)

	MatchScoreValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_score_value",
			Help:    "Distribution of accepted match quality scores",
			Buckets: prometheus.LinearBuckets(0.2, 0.1, 9),
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "engine", "gateway"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Event Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of domain events published",
		},
		[]string{"topic"},
	)

	EventPublishErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_publish_errors_total",
			Help: "Total number of failed event publications",
		},
		[]string{"topic"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records a computed recommendation response.
func RecordRecommendation(duration time.Duration, games, teammates int, teammateMode string) {
	RecommendationDuration.Observe(duration.Seconds())
	RecommendationItems.WithLabelValues("games").Observe(float64(games))
	RecommendationItems.WithLabelValues("teammates").Observe(float64(teammates))
	TeammateModeTotal.WithLabelValues(teammateMode).Inc()
}

// RecordRecommendationServed counts a response by where it came from.
func RecordRecommendationServed(source string) {
	RecommendationsServed.WithLabelValues(source).Inc()
}

// RecordMatchScore records a match quality evaluation. Rejected matches carry no score.
func RecordMatchScore(score float64, accepted bool) {
	if !accepted {
		MatchScoresTotal.WithLabelValues("rejected").Inc()
		return
	}
	MatchScoresTotal.WithLabelValues("accepted").Inc()
	MatchScoreValue.Observe(score)
}

// RecordCacheLookup records a cache hit or miss for cacheType.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// UpdateCacheSize sets the current entry count of cacheType.
func UpdateCacheSize(cacheType string, size int) {
	CacheSize.WithLabelValues(cacheType).Set(float64(size))
}

// RecordCacheEvictions adds n TTL evictions for cacheType.
func RecordCacheEvictions(cacheType string, n int) {
	if n > 0 {
		CacheEvictions.WithLabelValues(cacheType).Add(float64(n))
	}
}

// RecordEventPublish records the outcome of publishing to topic.
func RecordEventPublish(topic string, err error) {
	if err != nil {
		EventPublishErrors.WithLabelValues(topic).Inc()
		return
	}
	EventsPublished.WithLabelValues(topic).Inc()
}
