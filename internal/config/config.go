// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package config

import (
	"time"

	"github.com/tomtom215/gamesphere/internal/matchmaking"
	"github.com/tomtom215/gamesphere/internal/recommend"
)

// Config holds all application configuration
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Security    SecurityConfig    `koanf:"security"`
	Logging     LoggingConfig     `koanf:"logging"`
	Recommend   RecommendConfig   `koanf:"recommend"`
	Matchmaking MatchmakingConfig `koanf:"matchmaking"`
	Gateway     GatewayConfig     `koanf:"gateway"`
	Events      EventsConfig      `koanf:"events"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	// Environment is "development" or "production". Production refuses to
	// start without an API key.
	Environment string `koanf:"environment"`
}

// SecurityConfig holds authentication and request limiting configuration
type SecurityConfig struct {
	// APIKey guards /recommend. Empty disables the check.
	APIKey string `koanf:"api_key"`

	// JWTSecret verifies bearer tokens on /ai/recommend (HS256).
	JWTSecret string `koanf:"jwt_secret"`

	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json, console
	Caller bool   `koanf:"caller"`
}

// RecommendConfig holds recommendation engine tuning
type RecommendConfig struct {
	CollaborativeWeight float64 `koanf:"collaborative_weight"`
	ContentWeight       float64 `koanf:"content_weight"`

	MaxGames     int `koanf:"max_games"`
	MaxTeammates int `koanf:"max_teammates"`
	MaxInterests int `koanf:"max_interests"`

	HoursSaturation float64 `koanf:"hours_saturation"`
	DislikeCap      float64 `koanf:"dislike_cap"`

	Parallel bool `koanf:"parallel"`

	CacheEnabled         bool          `koanf:"cache_enabled"`
	CacheTTL             time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries      int           `koanf:"cache_max_entries"`
	CacheCleanupInterval time.Duration `koanf:"cache_cleanup_interval"`
}

// MatchmakingConfig holds the match quality heuristic constants
type MatchmakingConfig struct {
	RejectBelow   float64 `koanf:"reject_below"`
	RegionBonus   float64 `koanf:"region_bonus"`
	LatencyWeight float64 `koanf:"latency_weight"`
	MaxLatencyMs  int     `koanf:"max_latency_ms"`
	SkillRange    int     `koanf:"skill_range"`
}

// GatewayConfig holds the authenticated recommendation gateway configuration.
// Timeout and cache TTL are integers to match the AI_TIMEOUT_MS and
// AI_CACHE_TTL_SECONDS deployment variables.
type GatewayConfig struct {
	Enabled bool `koanf:"enabled"`

	// ScoringURL is the base URL of a remote scoring service. Empty scores
	// in-process.
	ScoringURL    string `koanf:"scoring_url"`
	ScoringAPIKey string `koanf:"scoring_api_key"`

	TimeoutMs       int `koanf:"timeout_ms"`
	CacheTTLSeconds int `koanf:"cache_ttl_seconds"`
	CacheMax        int `koanf:"cache_max"`

	// RequestsPerSecond and Burst throttle outbound scoring calls.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig holds circuit breaker settings for the scoring client
type BreakerConfig struct {
	MaxRequests      uint32        `koanf:"max_requests"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout"`
	FailureThreshold uint32        `koanf:"failure_threshold"`
}

// EventsConfig holds NATS event publishing configuration
type EventsConfig struct {
	Enabled        bool   `koanf:"enabled"`
	URL            string `koanf:"url"`
	EmbeddedServer bool   `koanf:"embedded_server"`
	EmbeddedHost   string `koanf:"embedded_host"`
	EmbeddedPort   int    `koanf:"embedded_port"`
	SubjectPrefix  string `koanf:"subject_prefix"`
}

// Timeout returns the scoring call timeout.
func (g *GatewayConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutMs) * time.Millisecond
}

// CacheTTL returns how long gateway responses are cached.
func (g *GatewayConfig) CacheTTL() time.Duration {
	return time.Duration(g.CacheTTLSeconds) * time.Second
}

// IsProduction reports whether the server runs in production mode.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// RecommendEngineConfig converts the recommend section into engine configuration.
func (c *Config) RecommendEngineConfig() *recommend.Config {
	r := c.Recommend
	return &recommend.Config{
		Weights: recommend.Weights{
			Collaborative: r.CollaborativeWeight,
			Content:       r.ContentWeight,
		},
		Limits: recommend.LimitsConfig{
			MaxGames:     r.MaxGames,
			MaxTeammates: r.MaxTeammates,
			MaxInterests: r.MaxInterests,
		},
		Affinity: recommend.AffinityConfig{
			HoursSaturation: r.HoursSaturation,
			DislikeCap:      r.DislikeCap,
		},
		Parallel: r.Parallel,
		Cache: recommend.CacheConfig{
			Enabled:         r.CacheEnabled,
			TTL:             r.CacheTTL,
			MaxEntries:      r.CacheMaxEntries,
			CleanupInterval: r.CacheCleanupInterval,
		},
	}
}

// MatchmakingScorerConfig converts the matchmaking section into scorer configuration.
func (c *Config) MatchmakingScorerConfig() matchmaking.Config {
	m := c.Matchmaking
	return matchmaking.Config{
		RejectBelow:   m.RejectBelow,
		RegionBonus:   m.RegionBonus,
		LatencyWeight: m.LatencyWeight,
		MaxLatencyMs:  m.MaxLatencyMs,
		SkillRange:    m.SkillRange,
	}
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in that order of precedence.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
