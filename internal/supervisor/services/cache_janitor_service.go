// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package services

import (
	"context"
	"time"

	"github.com/tomtom215/gamesphere/internal/logging"
	"github.com/tomtom215/gamesphere/internal/metrics"
)

// ExpiringCache is a cache whose expired entries can be purged.
// *cache.LRU satisfies it.
type ExpiringCache interface {
	CleanupExpired() int
	Len() int
}

// CacheJanitorService periodically purges expired entries from a response
// cache so that stale responses do not hold memory until evicted by size.
type CacheJanitorService struct {
	cacheType string
	cache     ExpiringCache
	interval  time.Duration
}

// NewCacheJanitorService creates a janitor for cache. cacheType labels the
// cache metrics. A non-positive interval defaults to one minute.
func NewCacheJanitorService(cacheType string, cache ExpiringCache, interval time.Duration) *CacheJanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitorService{cacheType: cacheType, cache: cache, interval: interval}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep purges expired entries once and reports the result.
func (s *CacheJanitorService) sweep() int {
	removed := s.cache.CleanupExpired()
	metrics.RecordCacheEvictions(s.cacheType, removed)
	metrics.UpdateCacheSize(s.cacheType, s.cache.Len())
	if removed > 0 {
		logging.Debug().
			Str("cache", s.cacheType).
			Int("removed", removed).
			Msg("purged expired cache entries")
	}
	return removed
}

// String implements fmt.Stringer for suture logs.
func (s *CacheJanitorService) String() string {
	return "cache-janitor-" + s.cacheType
}
