// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamesphere/internal/cache"
	"github.com/tomtom215/gamesphere/internal/logging"
	"github.com/tomtom215/gamesphere/internal/metrics"
	"github.com/tomtom215/gamesphere/internal/recommend"
)

// Sources reported for a served gateway response.
const (
	SourceCache    = "cache"
	SourceRemote   = "remote"
	SourceEngine   = "engine"
	SourceFallback = "fallback"
)

// cacheType labels gateway cache metrics.
const cacheType = "gateway"

// ErrNilScorer is returned by NewService without a scorer.
var ErrNilScorer = errors.New("gateway: nil scorer")

// Scorer produces recommendations for a normalized request. *Client and
// *recommend.Engine both satisfy it.
type Scorer interface {
	Recommend(ctx context.Context, req *recommend.Request) (*recommend.Response, error)
}

// ServiceConfig configures a gateway Service.
type ServiceConfig struct {
	CacheTTL time.Duration
	CacheMax int

	// Limits bound the fallback response.
	Limits recommend.LimitsConfig

	// Source names the scorer in metrics and events: SourceRemote or SourceEngine.
	Source string
}

// Service is the account-facing side of recommendations. It caches
// responses per user and payload, and answers with a heuristic fallback
// whenever the scorer fails, so callers always get a result.
type Service struct {
	scorer Scorer
	cache  *cache.LRU[*recommend.Response]
	limits recommend.LimitsConfig
	source string
	logger zerolog.Logger
}

// NewService creates a gateway service around scorer.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(scorer Scorer, cfg ServiceConfig, logger zerolog.Logger) (*Service, error) {
	if scorer == nil {
		return nil, ErrNilScorer
	}
	if cfg.CacheMax <= 0 {
		return nil, fmt.Errorf("gateway: cache max must be positive, got %d", cfg.CacheMax)
	}
	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("gateway: cache ttl must be positive, got %v", cfg.CacheTTL)
	}
	if cfg.Source == "" {
		cfg.Source = SourceRemote
	}
	if cfg.Limits == (recommend.LimitsConfig{}) {
		cfg.Limits = recommend.DefaultConfig().Limits
	}

	return &Service{
		scorer: scorer,
		cache:  cache.NewLRU[*recommend.Response](cfg.CacheMax, cfg.CacheTTL),
		limits: cfg.Limits,
		source: cfg.Source,
		logger: logger.With().Str("component", "gateway").Logger(),
	}, nil
}

// Cache returns the response cache.
func (s *Service) Cache() *cache.LRU[*recommend.Response] {
	return s.cache
}

// Recommend returns recommendations for userID and reports where they came
// from. Scorer failures are logged and answered with the fallback, which is
// cached like any other response. Only a cancelled context is an error.
func (s *Service) Recommend(ctx context.Context, userID string, dto *RecommendDTO) (*recommend.Response, string, error) {
	req := dto.Normalize(userID)

	key, err := recommend.CacheKey(userID, req)
	if err != nil {
		return nil, "", fmt.Errorf("cache key: %w", err)
	}

	if resp, ok := s.cache.Get(key); ok {
		metrics.RecordCacheLookup(cacheType, true)
		metrics.RecordRecommendationServed(SourceCache)
		return resp, SourceCache, nil
	}
	metrics.RecordCacheLookup(cacheType, false)

	source := s.source
	resp, err := s.scorer.Recommend(ctx, req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, "", ctxErr
		}
		s.logger.Warn().
			Err(err).
			Str("user_id", userID).
			Str("request_id", logging.RequestIDFromContext(ctx)).
			Msg("AI service request failed, using fallback.")
		resp = recommend.Fallback(req, s.limits)
		source = SourceFallback
	}

	s.cache.Set(key, resp)
	metrics.UpdateCacheSize(cacheType, s.cache.Len())

	// The engine records its own served metric.
	if source != SourceEngine {
		metrics.RecordRecommendationServed(source)
	}
	return resp, source, nil
}
