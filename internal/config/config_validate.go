// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package config

import (
	"fmt"

	"github.com/tomtom215/gamesphere/internal/logging"
)

// minJWTSecretLength is the minimum HS256 secret length accepted.
const minJWTSecretLength = 32

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.RecommendEngineConfig().Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	if err := c.MatchmakingScorerConfig().Validate(); err != nil {
		return fmt.Errorf("matchmaking: %w", err)
	}

	if err := c.validateGateway(); err != nil {
		return err
	}

	return c.validateEvents()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.Environment != "development" && c.Server.Environment != "production" {
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Server.IsProduction() && c.Security.APIKey == "" {
		return fmt.Errorf("AI_API_KEY is required when ENVIRONMENT is production")
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs <= 0 {
			return fmt.Errorf("RATE_LIMIT_REQS must be positive")
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// validateGateway validates the gateway configuration (only if enabled)
func (c *Config) validateGateway() error {
	g := c.Gateway
	if !g.Enabled {
		return nil
	}

	if len(c.Security.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters when the gateway is enabled", minJWTSecretLength)
	}
	if g.ScoringURL != "" {
		if err := validateHTTPURL(g.ScoringURL, "AI_SERVICE_URL"); err != nil {
			return err
		}
	}
	if g.TimeoutMs <= 0 {
		return fmt.Errorf("AI_TIMEOUT_MS must be positive")
	}
	if g.CacheTTLSeconds <= 0 {
		return fmt.Errorf("AI_CACHE_TTL_SECONDS must be positive")
	}
	if g.CacheMax <= 0 {
		return fmt.Errorf("AI_CACHE_MAX must be positive")
	}
	if g.RequestsPerSecond <= 0 || g.Burst <= 0 {
		return fmt.Errorf("gateway requests_per_second and burst must be positive")
	}
	if g.Breaker.FailureThreshold == 0 {
		return fmt.Errorf("gateway breaker failure_threshold must be positive")
	}
	return nil
}

// validateEvents validates event publishing configuration (only if enabled)
func (c *Config) validateEvents() error {
	e := c.Events
	if !e.Enabled {
		return nil
	}

	if e.SubjectPrefix == "" {
		return fmt.Errorf("NATS_SUBJECT_PREFIX is required when events are enabled")
	}
	if e.EmbeddedServer {
		if e.EmbeddedPort < 1 || e.EmbeddedPort > 65535 {
			return fmt.Errorf("NATS_EMBEDDED_PORT must be between 1 and 65535, got %d", e.EmbeddedPort)
		}
		return nil
	}
	if err := validateNATSURL(e.URL); err != nil {
		return fmt.Errorf("NATS_URL: %w", err)
	}
	return nil
}
