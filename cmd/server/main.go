// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/gamesphere/docs" // Import generated swagger docs
	"github.com/tomtom215/gamesphere/internal/api"
	"github.com/tomtom215/gamesphere/internal/auth"
	"github.com/tomtom215/gamesphere/internal/config"
	"github.com/tomtom215/gamesphere/internal/logging"
	"github.com/tomtom215/gamesphere/internal/matchmaking"
	"github.com/tomtom215/gamesphere/internal/recommend"
	"github.com/tomtom215/gamesphere/internal/supervisor"
	"github.com/tomtom215/gamesphere/internal/supervisor/services"
)

//nolint:gocyclo // Main initialization function with sequential setup steps
func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Bool("api_key", cfg.Security.APIKey != "").
		Bool("gateway", cfg.Gateway.Enabled).
		Bool("events", cfg.Events.Enabled).
		Msg("Starting GameSphere with supervisor tree")

	if cfg.Security.APIKey == "" {
		logging.Warn().Msg("AI_API_KEY is not set: POST /recommend accepts unauthenticated requests")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	engine, err := recommend.NewEngine(cfg.RecommendEngineConfig(), logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}
	matcher := matchmaking.NewScorer(cfg.MatchmakingScorerConfig())

	eventComponents, err := initEvents(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize event publishing")
	}
	defer eventComponents.Close()

	gatewayComponents, err := initGateway(cfg, engine, logging.WithComponent("gateway"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation gateway")
	}

	opts := []api.HandlerOption{
		api.WithRequestTimeout(cfg.Server.Timeout),
		api.WithEventPublisher(eventComponents.Publisher()),
	}
	var authMiddleware *auth.Middleware
	if gatewayComponents != nil {
		opts = append(opts, api.WithGateway(gatewayComponents.Service))
		authMiddleware = gatewayComponents.Auth
	}

	handler, err := api.NewHandler(engine, matcher, opts...)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API handler")
	}

	chiMW := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMW, cfg.Security.APIKey, authMiddleware)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// Bridges zerolog to slog for sutureslog
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	// Messaging layer
	eventComponents.AddToSupervisor(tree, cfg.Server.ShutdownTimeout)

	// Maintenance layer
	if engineCache := engine.Cache(); engineCache != nil {
		tree.AddMaintenanceService(services.NewCacheJanitorService("engine", engineCache, cfg.Recommend.CacheCleanupInterval))
	}
	if gatewayComponents != nil {
		tree.AddMaintenanceService(services.NewCacheJanitorService("gateway", gatewayComponents.Service.Cache(), cfg.Recommend.CacheCleanupInterval))
	}

	// API layer
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}
	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		logging.Error().Err(treeErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
