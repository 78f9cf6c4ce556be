// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package gateway

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamesphere/internal/recommend"
)

// stubScorer returns resp or err and counts calls.
type stubScorer struct {
	calls atomic.Int32
	resp  *recommend.Response
	err   error
}

func (s *stubScorer) Recommend(context.Context, *recommend.Request) (*recommend.Response, error) {
	s.calls.Add(1)
	return s.resp, s.err
}

func newTestService(t *testing.T, scorer Scorer) *Service {
	t.Helper()
	svc, err := NewService(scorer, ServiceConfig{CacheTTL: time.Minute, CacheMax: 10}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func fallbackDTO() *RecommendDTO {
	title := "Star Raiders"
	return &RecommendDTO{
		UserHistory: []GameHistoryDTO{{GameID: "g1", Tags: []string{"space"}}},
		GamesCatalog: []GameCatalogDTO{
			{GameID: "g1", Title: &title, Tags: []string{"space"}},
			{GameID: "g2", Title: &title, Tags: []string{"space", "shooter"}},
		},
	}
}

func TestService_CachesRemoteResponse(t *testing.T) {
	scorer := &stubScorer{resp: &recommend.Response{
		Games:              []recommend.RecommendationItem{{ID: "g7", Score: 0.9, Reason: "Similar players"}},
		Teammates:          []recommend.RecommendationItem{},
		ExtractedInterests: []string{},
	}}
	svc := newTestService(t, scorer)
	ctx := context.Background()

	resp, source, err := svc.Recommend(ctx, "u1", fallbackDTO())
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if source != SourceRemote || resp.Games[0].ID != "g7" {
		t.Errorf("first call = %s %+v", source, resp.Games)
	}

	_, source, err = svc.Recommend(ctx, "u1", fallbackDTO())
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if source != SourceCache {
		t.Errorf("second call source = %s, want cache", source)
	}
	if got := scorer.calls.Load(); got != 1 {
		t.Errorf("scorer calls = %d, want 1", got)
	}

	// A different user misses the cache.
	if _, source, _ = svc.Recommend(ctx, "u2", fallbackDTO()); source != SourceRemote {
		t.Errorf("other user source = %s, want remote", source)
	}
}

func TestService_FallbackOnFailure(t *testing.T) {
	scorer := &stubScorer{err: ErrServiceUnavailable}
	svc := newTestService(t, scorer)

	resp, source, err := svc.Recommend(context.Background(), "u1", fallbackDTO())
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if source != SourceFallback {
		t.Errorf("source = %s, want fallback", source)
	}
	if len(resp.Games) != 1 || resp.Games[0].ID != "g2" {
		t.Errorf("fallback games = %+v, want only the unplayed g2", resp.Games)
	}
	if resp.Teammates == nil {
		t.Error("fallback teammates must be an empty list, not nil")
	}

	// The fallback is cached.
	_, source, _ = svc.Recommend(context.Background(), "u1", fallbackDTO())
	if source != SourceCache {
		t.Errorf("second call source = %s, want cache", source)
	}
	if got := scorer.calls.Load(); got != 1 {
		t.Errorf("scorer calls = %d, want 1", got)
	}
}

func TestService_CancelledContext(t *testing.T) {
	scorer := &stubScorer{err: context.Canceled}
	svc := newTestService(t, scorer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := svc.Recommend(ctx, "u1", fallbackDTO())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Recommend() error = %v, want context.Canceled", err)
	}
	if svc.Cache().Len() != 0 {
		t.Error("nothing must be cached for a cancelled request")
	}
}

func TestService_InProcessEngine(t *testing.T) {
	engine, err := recommend.NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	svc, err := NewService(engine, ServiceConfig{
		CacheTTL: time.Minute,
		CacheMax: 10,
		Source:   SourceEngine,
	}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	resp, source, err := svc.Recommend(context.Background(), "u1", fallbackDTO())
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if source != SourceEngine {
		t.Errorf("source = %s, want engine", source)
	}
	if resp.Games == nil || resp.Teammates == nil || resp.ExtractedInterests == nil {
		t.Errorf("engine response lists must be non-nil: %+v", resp)
	}
}

func TestNewService_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		scorer Scorer
		cfg    ServiceConfig
	}{
		{"nil scorer", nil, ServiceConfig{CacheTTL: time.Minute, CacheMax: 1}},
		{"zero cache max", &stubScorer{}, ServiceConfig{CacheTTL: time.Minute}},
		{"zero ttl", &stubScorer{}, ServiceConfig{CacheMax: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewService(tt.scorer, tt.cfg, zerolog.Nop()); err == nil {
				t.Error("NewService() error = nil, want error")
			}
		})
	}
}
