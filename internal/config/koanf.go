// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/gamesphere/internal/matchmaking"
	"github.com/tomtom215/gamesphere/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/gamesphere/config.yaml",
	"/etc/gamesphere/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	rec := recommend.DefaultConfig()
	match := matchmaking.DefaultConfig()

	return &Config{
		Server: ServerConfig{
			Port:            8000,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Security: SecurityConfig{
			APIKey:            "",
			JWTSecret:         "",
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     120,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: RecommendConfig{
			CollaborativeWeight:  rec.Weights.Collaborative,
			ContentWeight:        rec.Weights.Content,
			MaxGames:             rec.Limits.MaxGames,
			MaxTeammates:         rec.Limits.MaxTeammates,
			MaxInterests:         rec.Limits.MaxInterests,
			HoursSaturation:      rec.Affinity.HoursSaturation,
			DislikeCap:           rec.Affinity.DislikeCap,
			Parallel:             rec.Parallel,
			CacheEnabled:         rec.Cache.Enabled,
			CacheTTL:             rec.Cache.TTL,
			CacheMaxEntries:      rec.Cache.MaxEntries,
			CacheCleanupInterval: rec.Cache.CleanupInterval,
		},
		Matchmaking: MatchmakingConfig{
			RejectBelow:   match.RejectBelow,
			RegionBonus:   match.RegionBonus,
			LatencyWeight: match.LatencyWeight,
			MaxLatencyMs:  match.MaxLatencyMs,
			SkillRange:    match.SkillRange,
		},
		Gateway: GatewayConfig{
			Enabled:           false,
			ScoringURL:        "", // in-process scoring
			ScoringAPIKey:     "",
			TimeoutMs:         4000,
			CacheTTLSeconds:   300,
			CacheMax:          500,
			RequestsPerSecond: 50,
			Burst:             10,
			Breaker: BreakerConfig{
				MaxRequests:      1,
				Interval:         time.Minute,
				Timeout:          30 * time.Second,
				FailureThreshold: 5,
			},
		},
		Events: EventsConfig{
			Enabled:        false,
			URL:            "nats://127.0.0.1:4222",
			EmbeddedServer: false,
			EmbeddedHost:   "127.0.0.1",
			EmbeddedPort:   4222,
			SubjectPrefix:  "gamesphere",
		},
	}
}

// LoadWithKoanf loads configuration using Koanf with layered sources:
//  1. Default values (lowest priority)
//  2. Config file (config.yaml, optional)
//  3. Environment variables (highest priority)
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Environment variables
	// AI_SERVICE_URL -> gateway.scoring_url
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated strings from the environment
// into string slices. Values loaded from YAML are already slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// The AI_* names are shared with the deployment of the backend gateway.
var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Security
	"ai_api_key":          "security.api_key",
	"jwt_secret":          "security.jwt_secret",
	"cors_origins":        "security.cors_origins",
	"rate_limit_reqs":     "security.rate_limit_reqs",
	"rate_limit_max":      "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"rate_limit_disabled": "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Recommendation engine
	"recommend_collaborative_weight":   "recommend.collaborative_weight",
	"recommend_content_weight":         "recommend.content_weight",
	"recommend_max_games":              "recommend.max_games",
	"recommend_max_teammates":          "recommend.max_teammates",
	"recommend_max_interests":          "recommend.max_interests",
	"recommend_hours_saturation":       "recommend.hours_saturation",
	"recommend_dislike_cap":            "recommend.dislike_cap",
	"recommend_parallel":               "recommend.parallel",
	"recommend_cache_enabled":          "recommend.cache_enabled",
	"recommend_cache_ttl":              "recommend.cache_ttl",
	"recommend_cache_max_entries":      "recommend.cache_max_entries",
	"recommend_cache_cleanup_interval": "recommend.cache_cleanup_interval",

	// Matchmaking
	"match_reject_below":   "matchmaking.reject_below",
	"match_region_bonus":   "matchmaking.region_bonus",
	"match_latency_weight": "matchmaking.latency_weight",
	"match_max_latency_ms": "matchmaking.max_latency_ms",
	"match_skill_range":    "matchmaking.skill_range",

	// Gateway
	"gateway_enabled":                   "gateway.enabled",
	"ai_service_url":                    "gateway.scoring_url",
	"ai_service_api_key":                "gateway.scoring_api_key",
	"ai_timeout_ms":                     "gateway.timeout_ms",
	"ai_cache_ttl_seconds":              "gateway.cache_ttl_seconds",
	"ai_cache_max":                      "gateway.cache_max",
	"gateway_requests_per_second":       "gateway.requests_per_second",
	"gateway_burst":                     "gateway.burst",
	"gateway_breaker_max_requests":      "gateway.breaker.max_requests",
	"gateway_breaker_interval":          "gateway.breaker.interval",
	"gateway_breaker_timeout":           "gateway.breaker.timeout",
	"gateway_breaker_failure_threshold": "gateway.breaker.failure_threshold",

	// Events
	"nats_enabled":        "events.enabled",
	"nats_url":            "events.url",
	"nats_embedded":       "events.embedded_server",
	"nats_embedded_host":  "events.embedded_host",
	"nats_embedded_port":  "events.embedded_port",
	"nats_subject_prefix": "events.subject_prefix",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return "" and are skipped, so unrelated environment
// variables never reach the configuration.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
