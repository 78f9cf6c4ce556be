// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package recommend

import (
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights scales each score source before fusion.
	Weights Weights `json:"weights"`

	// Limits contains output size limits.
	Limits LimitsConfig `json:"limits"`

	// Affinity controls how history entries become matrix values.
	Affinity AffinityConfig `json:"affinity"`

	// Parallel runs the collaborative and content scorers concurrently.
	Parallel bool `json:"parallel"`

	// Cache contains response caching parameters.
	Cache CacheConfig `json:"cache"`
}

// Weights are the score-fusion multipliers. The fused score of a game is
// the maximum of its weighted source scores.
type Weights struct {
	// Collaborative is applied to similarity-weighted predictions.
	// Default: 1.0.
	Collaborative float64 `json:"collaborative"`

	// Content is applied to interest-overlap ratios.
	// Default: 0.7.
	Content float64 `json:"content"`
}

// LimitsConfig bounds the size of each output list.
type LimitsConfig struct {
	MaxGames     int `json:"max_games"`
	MaxTeammates int `json:"max_teammates"`
	MaxInterests int `json:"max_interests"`
}

// AffinityConfig contains the constants of the affinity function.
type AffinityConfig struct {
	// HoursSaturation is the playtime at which affinity reaches 1.0.
	// Default: 50.
	HoursSaturation float64 `json:"hours_saturation"`

	// DislikeCap is the maximum affinity of an explicitly disliked game.
	// Default: 0.1.
	DislikeCap float64 `json:"dislike_cap"`
}

// CacheConfig contains response caching parameters.
type CacheConfig struct {
	Enabled bool `json:"enabled"`

	// TTL is how long a cached response is served.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries bounds the number of cached responses.
	// Default: 500.
	MaxEntries int `json:"max_entries"`

	// CleanupInterval is how often expired entries are purged.
	// Default: 1m.
	CleanupInterval time.Duration `json:"cleanup_interval"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Collaborative: 1.0,
			Content:       0.7,
		},
		Limits: LimitsConfig{
			MaxGames:     5,
			MaxTeammates: 5,
			MaxInterests: DefaultMaxInterests,
		},
		Affinity: AffinityConfig{
			HoursSaturation: 50,
			DislikeCap:      0.1,
		},
		Parallel: true,
		Cache: CacheConfig{
			Enabled:         false,
			TTL:             5 * time.Minute,
			MaxEntries:      500,
			CleanupInterval: time.Minute,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Weights.Collaborative < 0 || c.Weights.Content < 0 {
		return fmt.Errorf("weights must be non-negative")
	}
	if c.Limits.MaxGames <= 0 {
		return fmt.Errorf("max_games must be positive")
	}
	if c.Limits.MaxTeammates <= 0 {
		return fmt.Errorf("max_teammates must be positive")
	}
	if c.Limits.MaxInterests <= 0 {
		return fmt.Errorf("max_interests must be positive")
	}
	if c.Affinity.HoursSaturation <= 0 {
		return fmt.Errorf("hours_saturation must be positive")
	}
	if c.Affinity.DislikeCap < 0 || c.Affinity.DislikeCap > 1 {
		return fmt.Errorf("dislike_cap must be in [0,1]")
	}
	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache ttl must be positive")
		}
		if c.Cache.MaxEntries <= 0 {
			return fmt.Errorf("cache max_entries must be positive")
		}
	}
	return nil
}
