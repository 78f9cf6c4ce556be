// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateConfigFile points CONFIG_PATH at a missing file and moves into an
// empty directory so no stray config.yaml is picked up.
func isolateConfigFile(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("Server.Environment = %q, want development", cfg.Server.Environment)
	}
	if cfg.Security.APIKey != "" {
		t.Errorf("Security.APIKey should be empty by default")
	}
	if cfg.Gateway.TimeoutMs != 4000 {
		t.Errorf("Gateway.TimeoutMs = %d, want 4000", cfg.Gateway.TimeoutMs)
	}
	if cfg.Gateway.CacheTTL() != 300*time.Second {
		t.Errorf("Gateway.CacheTTL() = %v, want 5m", cfg.Gateway.CacheTTL())
	}
	if cfg.Gateway.CacheMax != 500 {
		t.Errorf("Gateway.CacheMax = %d, want 500", cfg.Gateway.CacheMax)
	}
	if cfg.Recommend.ContentWeight != 0.7 {
		t.Errorf("Recommend.ContentWeight = %v, want 0.7", cfg.Recommend.ContentWeight)
	}
	if cfg.Matchmaking.RejectBelow != 0.2 {
		t.Errorf("Matchmaking.RejectBelow = %v, want 0.2", cfg.Matchmaking.RejectBelow)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolateConfigFile(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q", cfg.Server.Host)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Recommend.CacheTTL != 5*time.Minute {
		t.Errorf("Recommend.CacheTTL = %v, want 5m", cfg.Recommend.CacheTTL)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	isolateConfigFile(t)

	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("AI_API_KEY", "secret-key")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GATEWAY_ENABLED", "true")
	t.Setenv("JWT_SECRET", strings.Repeat("s", 32))
	t.Setenv("AI_SERVICE_URL", "http://ai:8000")
	t.Setenv("AI_TIMEOUT_MS", "2500")
	t.Setenv("AI_CACHE_TTL_SECONDS", "60")
	t.Setenv("AI_CACHE_MAX", "50")
	t.Setenv("RECOMMEND_CACHE_TTL", "90s")
	t.Setenv("MATCH_REJECT_BELOW", "0.3")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Security.APIKey != "secret-key" {
		t.Errorf("Security.APIKey = %q", cfg.Security.APIKey)
	}
	wantOrigins := []string{"https://a.example.com", "https://b.example.com"}
	if strings.Join(cfg.Security.CORSOrigins, "|") != strings.Join(wantOrigins, "|") {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, wantOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if !cfg.Gateway.Enabled || cfg.Gateway.ScoringURL != "http://ai:8000" {
		t.Errorf("Gateway = %+v", cfg.Gateway)
	}
	if cfg.Gateway.Timeout() != 2500*time.Millisecond {
		t.Errorf("Gateway.Timeout() = %v", cfg.Gateway.Timeout())
	}
	if cfg.Gateway.CacheTTL() != time.Minute || cfg.Gateway.CacheMax != 50 {
		t.Errorf("Gateway cache = %v/%d", cfg.Gateway.CacheTTL(), cfg.Gateway.CacheMax)
	}
	if cfg.Recommend.CacheTTL != 90*time.Second {
		t.Errorf("Recommend.CacheTTL = %v", cfg.Recommend.CacheTTL)
	}
	if got := cfg.MatchmakingScorerConfig().RejectBelow; got != 0.3 {
		t.Errorf("RejectBelow = %v, want 0.3", got)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "gamesphere.yaml")
	content := `
server:
  port: 8080
security:
  cors_origins:
    - https://play.example.com
recommend:
  max_games: 10
  content_weight: 0.5
matchmaking:
  region_bonus: 0.15
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	// Environment wins over the file.
	t.Setenv("HTTP_PORT", "8081")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 8081 {
		t.Errorf("Server.Port = %d, want env override 8081", cfg.Server.Port)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://play.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}

	engine := cfg.RecommendEngineConfig()
	if engine.Limits.MaxGames != 10 || engine.Weights.Content != 0.5 {
		t.Errorf("engine config = %+v", engine)
	}
	if engine.Weights.Collaborative != 1.0 {
		t.Errorf("unset file keys must keep defaults, Collaborative = %v", engine.Weights.Collaborative)
	}
	if cfg.Matchmaking.RegionBonus != 0.15 {
		t.Errorf("RegionBonus = %v", cfg.Matchmaking.RegionBonus)
	}
}

func TestLoadWithKoanf_InvalidEnv(t *testing.T) {
	isolateConfigFile(t)
	t.Setenv("HTTP_PORT", "70000")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected validation error for out-of-range port")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"AI_API_KEY", "security.api_key"},
		{"AI_SERVICE_URL", "gateway.scoring_url"},
		{"AI_SERVICE_API_KEY", "gateway.scoring_api_key"},
		{"AI_TIMEOUT_MS", "gateway.timeout_ms"},
		{"RATE_LIMIT_MAX", "security.rate_limit_reqs"},
		{"NATS_URL", "events.url"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := envTransformFunc(tt.key); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"unknown environment", func(c *Config) { c.Server.Environment = "staging" }, "ENVIRONMENT"},
		{"production without key", func(c *Config) { c.Server.Environment = "production" }, "AI_API_KEY"},
		{"production with key", func(c *Config) {
			c.Server.Environment = "production"
			c.Security.APIKey = "k"
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"rate limit disabled skips checks", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQS"},
		{"negative weight", func(c *Config) { c.Recommend.ContentWeight = -1 }, "recommend"},
		{"bad matchmaking", func(c *Config) { c.Matchmaking.SkillRange = 0 }, "matchmaking"},
		{"gateway short secret", func(c *Config) {
			c.Gateway.Enabled = true
			c.Security.JWTSecret = "short"
		}, "JWT_SECRET"},
		{"gateway bad url", func(c *Config) {
			c.Gateway.Enabled = true
			c.Security.JWTSecret = strings.Repeat("x", 32)
			c.Gateway.ScoringURL = "ftp://ai"
		}, "AI_SERVICE_URL"},
		{"gateway in-process", func(c *Config) {
			c.Gateway.Enabled = true
			c.Security.JWTSecret = strings.Repeat("x", 32)
		}, ""},
		{"gateway zero timeout", func(c *Config) {
			c.Gateway.Enabled = true
			c.Security.JWTSecret = strings.Repeat("x", 32)
			c.Gateway.TimeoutMs = 0
		}, "AI_TIMEOUT_MS"},
		{"events bad url", func(c *Config) {
			c.Events.Enabled = true
			c.Events.URL = "http://nats:4222"
		}, "NATS_URL"},
		{"events embedded ignores url", func(c *Config) {
			c.Events.Enabled = true
			c.Events.EmbeddedServer = true
			c.Events.URL = ""
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateHTTPURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"http://localhost:8000", false},
		{"https://ai.example.com/v1", false},
		{"ai.example.com", true},
		{"https://", true},
		{"http://ai?x=1", true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := validateHTTPURL(tt.url, "AI_SERVICE_URL")
			if (err != nil) != tt.wantErr {
				t.Errorf("validateHTTPURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}
