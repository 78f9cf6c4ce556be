// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func histogramCount(t *testing.T, obs prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := obs.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T is not a metric", obs)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
	}{
		{"health", "GET", "/health", "200"},
		{"match rejected", "POST", "/matchmaking/score", "422"},
		{"unauthorized", "POST", "/recommend", "401"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode)
			before := testutil.ToFloat64(counter)

			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, 3*time.Millisecond)

			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("api_requests_total = %v, want %v", got, before+1)
			}
		})
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+2 {
		t.Errorf("after two increments = %v, want %v", got, before+2)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after decrements = %v, want %v", got, before)
	}
}

func TestRecordMatchScore(t *testing.T) {
	accepted := MatchScoresTotal.WithLabelValues("accepted")
	rejected := MatchScoresTotal.WithLabelValues("rejected")
	beforeAccepted := testutil.ToFloat64(accepted)
	beforeRejected := testutil.ToFloat64(rejected)
	beforeObs := histogramCount(t, MatchScoreValue)

	RecordMatchScore(0.85, true)
	RecordMatchScore(0, false)

	if got := testutil.ToFloat64(accepted); got != beforeAccepted+1 {
		t.Errorf("accepted = %v, want %v", got, beforeAccepted+1)
	}
	if got := testutil.ToFloat64(rejected); got != beforeRejected+1 {
		t.Errorf("rejected = %v, want %v", got, beforeRejected+1)
	}
	if got := histogramCount(t, MatchScoreValue); got != beforeObs+1 {
		t.Errorf("score observations = %d, want %d (rejections are not observed)", got, beforeObs+1)
	}
}

func TestRecordRecommendation(t *testing.T) {
	mode := TeammateModeTotal.WithLabelValues("overlap")
	before := testutil.ToFloat64(mode)
	beforeObs := histogramCount(t, RecommendationDuration)

	RecordRecommendation(2*time.Millisecond, 5, 2, "overlap")

	if got := testutil.ToFloat64(mode); got != before+1 {
		t.Errorf("teammate mode counter = %v, want %v", got, before+1)
	}
	if got := histogramCount(t, RecommendationDuration); got != beforeObs+1 {
		t.Errorf("duration observations = %d, want %d", got, beforeObs+1)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := CacheHits.WithLabelValues("engine")
	misses := CacheMisses.WithLabelValues("engine")
	beforeHits := testutil.ToFloat64(hits)
	beforeMisses := testutil.ToFloat64(misses)

	RecordCacheLookup("engine", true)
	RecordCacheLookup("engine", false)
	RecordCacheLookup("engine", false)

	if got := testutil.ToFloat64(hits); got != beforeHits+1 {
		t.Errorf("hits = %v, want %v", got, beforeHits+1)
	}
	if got := testutil.ToFloat64(misses); got != beforeMisses+2 {
		t.Errorf("misses = %v, want %v", got, beforeMisses+2)
	}

	UpdateCacheSize("engine", 42)
	if got := testutil.ToFloat64(CacheSize.WithLabelValues("engine")); got != 42 {
		t.Errorf("cache size = %v, want 42", got)
	}

	evictions := CacheEvictions.WithLabelValues("engine")
	beforeEvictions := testutil.ToFloat64(evictions)
	RecordCacheEvictions("engine", 0)
	RecordCacheEvictions("engine", 3)
	if got := testutil.ToFloat64(evictions); got != beforeEvictions+3 {
		t.Errorf("evictions = %v, want %v", got, beforeEvictions+3)
	}
}

func TestRecordEventPublish(t *testing.T) {
	published := EventsPublished.WithLabelValues("match.scored")
	failed := EventPublishErrors.WithLabelValues("match.scored")
	beforePublished := testutil.ToFloat64(published)
	beforeFailed := testutil.ToFloat64(failed)

	RecordEventPublish("match.scored", nil)
	RecordEventPublish("match.scored", errors.New("nats: connection closed"))

	if got := testutil.ToFloat64(published); got != beforePublished+1 {
		t.Errorf("published = %v, want %v", got, beforePublished+1)
	}
	if got := testutil.ToFloat64(failed); got != beforeFailed+1 {
		t.Errorf("failed = %v, want %v", got, beforeFailed+1)
	}
}
