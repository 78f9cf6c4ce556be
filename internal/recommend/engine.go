// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamesphere/internal/cache"
	"github.com/tomtom215/gamesphere/internal/metrics"
)

// ErrNilRequest is returned when Recommend is called without a request.
var ErrNilRequest = errors.New("recommend: nil request")

// cacheType labels engine cache metrics.
const cacheType = "engine"

// Engine runs the hybrid recommendation pipeline. It is safe for concurrent use.
type Engine struct {
	config        *Config
	logger        zerolog.Logger
	collaborative *CollaborativeScorer
	content       *ContentScorer

	// cache is nil unless Config.Cache.Enabled.
	cache *cache.LRU[*Response]
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config:        cfg,
		logger:        logger.With().Str("component", "recommend").Logger(),
		collaborative: NewCollaborativeScorer(cfg.Affinity),
		content:       NewContentScorer(),
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[*Response](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	return e, nil
}

// Config returns the engine configuration. It must not be modified.
func (e *Engine) Config() *Config {
	return e.config
}

// Cache returns the response cache, or nil when caching is disabled.
func (e *Engine) Cache() *cache.LRU[*Response] {
	return e.cache
}

// Recommend scores games and teammates for req.
//
// The collaborative and content scorers are independent and run
// concurrently when Config.Parallel is set.
func (e *Engine) Recommend(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := e.cacheKey(req)
	if resp := e.cachedResponse(key); resp != nil {
		metrics.RecordRecommendationServed("cache")
		return resp, nil
	}

	start := time.Now()
	resp, mode := e.score(req)
	elapsed := time.Since(start)

	metrics.RecordRecommendation(elapsed, len(resp.Games), len(resp.Teammates), string(mode))
	metrics.RecordRecommendationServed("engine")
	e.logger.Debug().
		Str("user_id", req.UserID).
		Int("games", len(resp.Games)).
		Int("teammates", len(resp.Teammates)).
		Int("interests", len(resp.ExtractedInterests)).
		Str("teammate_mode", string(mode)).
		Dur("elapsed", elapsed).
		Msg("recommendation complete")

	if key != "" {
		e.cache.Set(key, resp)
		metrics.UpdateCacheSize(cacheType, e.cache.Len())
	}
	return resp, nil
}

// score runs the pipeline without caching.
func (e *Engine) score(req *Request) (*Response, TeammateMode) {
	interests := ExtractInterests(req.Preferences, req.UserHistory, e.config.Limits.MaxInterests)
	played := req.PlayedGames()

	var collaborative, content *ScoreMap
	if e.config.Parallel {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			collaborative = e.collaborative.Score(req.UserHistory, req.CommunityProfiles)
		}()
		go func() {
			defer wg.Done()
			content = e.content.Score(played, interests, req.GamesCatalog)
		}()
		wg.Wait()
	} else {
		collaborative = e.collaborative.Score(req.UserHistory, req.CommunityProfiles)
		content = e.content.Score(played, interests, req.GamesCatalog)
	}

	games := MergeGameScores([]ScoredSource{
		{Scores: collaborative, Weight: e.config.Weights.Collaborative, Reason: ReasonSimilarPlayers},
		{Scores: content, Weight: e.config.Weights.Content, Reason: ReasonMatchesInterests},
	}, e.config.Limits.MaxGames)

	teammates, mode := RecommendTeammates(req.MatchSuccess, req.CommunityProfiles, req.UserHistory, e.config.Limits.MaxTeammates)

	return &Response{
		Games:              games,
		Teammates:          teammates,
		ExtractedInterests: interests,
	}, mode
}

// cacheKey returns "" when caching is disabled or the key cannot be built.
func (e *Engine) cacheKey(req *Request) string {
	if e.cache == nil {
		return ""
	}
	key, err := CacheKey(req.UserID, req)
	if err != nil {
		e.logger.Warn().Err(err).Msg("failed to build cache key")
		return ""
	}
	return key
}

func (e *Engine) cachedResponse(key string) *Response {
	if key == "" {
		return nil
	}
	resp, ok := e.cache.Get(key)
	metrics.RecordCacheLookup(cacheType, ok)
	if !ok {
		return nil
	}
	e.logger.Debug().Msg("cache hit")
	return resp
}
