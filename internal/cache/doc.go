// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

// Package cache provides the bounded, TTL-aware LRU used to memoize
// recommendation responses.
//
// Entries expire lazily on Get. A supervised janitor calls CleanupExpired
// periodically so that idle keys do not hold memory until they are evicted
// by capacity pressure.
//
//	c := cache.NewLRU[*recommend.Response](500, 5*time.Minute)
//	c.Set(key, resp)
//	if resp, ok := c.Get(key); ok {
//	    // serve cached response
//	}
package cache
