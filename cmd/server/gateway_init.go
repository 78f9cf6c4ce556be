// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamesphere/internal/auth"
	"github.com/tomtom215/gamesphere/internal/breaker"
	"github.com/tomtom215/gamesphere/internal/config"
	"github.com/tomtom215/gamesphere/internal/gateway"
	"github.com/tomtom215/gamesphere/internal/recommend"
)

// tokenTTL is the lifetime of tokens issued by the JWT manager. The server
// only verifies tokens, so it bounds test and tooling tokens only.
const tokenTTL = 24 * time.Hour

// GatewayComponents holds the authenticated recommendation gateway.
type GatewayComponents struct {
	Service *gateway.Service
	Auth    *auth.Middleware
}

// initGateway builds the gateway when GATEWAY_ENABLED=true. Without an
// AI_SERVICE_URL the gateway scores with the in-process engine.
// Returns nil, nil when disabled.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initGateway(cfg *config.Config, engine *recommend.Engine, logger zerolog.Logger) (*GatewayComponents, error) {
	if !cfg.Gateway.Enabled {
		logger.Info().Msg("Recommendation gateway disabled (GATEWAY_ENABLED=false)")
		return nil, nil
	}

	jwtManager, err := auth.NewJWTManager(cfg.Security.JWTSecret, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("create JWT manager: %w", err)
	}

	var (
		scorer gateway.Scorer
		source string
	)
	if cfg.Gateway.ScoringURL == "" {
		scorer, source = engine, gateway.SourceEngine
		logger.Info().Msg("Gateway scoring in-process")
	} else {
		scorer, source = gateway.NewClient(buildClientConfig(cfg)), gateway.SourceRemote
		logger.Info().
			Str("url", cfg.Gateway.ScoringURL).
			Dur("timeout", cfg.Gateway.Timeout()).
			Msg("Gateway scoring via remote service")
	}

	svc, err := gateway.NewService(scorer, gateway.ServiceConfig{
		CacheTTL: cfg.Gateway.CacheTTL(),
		CacheMax: cfg.Gateway.CacheMax,
		Limits:   cfg.RecommendEngineConfig().Limits,
		Source:   source,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create gateway service: %w", err)
	}

	return &GatewayComponents{
		Service: svc,
		Auth:    auth.NewMiddleware(jwtManager),
	}, nil
}

// buildClientConfig creates the scoring client configuration from app config.
func buildClientConfig(cfg *config.Config) gateway.ClientConfig {
	g := cfg.Gateway
	return gateway.ClientConfig{
		BaseURL:           g.ScoringURL,
		APIKey:            g.ScoringAPIKey,
		Timeout:           g.Timeout(),
		RequestsPerSecond: g.RequestsPerSecond,
		Burst:             g.Burst,
		Breaker: breaker.Config{
			Name:             "scoring-service",
			MaxRequests:      g.Breaker.MaxRequests,
			Interval:         g.Breaker.Interval,
			Timeout:          g.Breaker.Timeout,
			FailureThreshold: g.Breaker.FailureThreshold,
		},
	}
}
