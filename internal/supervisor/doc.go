// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

/*
Package supervisor provides process supervision for GameSphere using suture v4.

# Overview

	RootSupervisor ("gamesphere")
	├── MessagingSupervisor ("messaging-layer")
	│   └── EmbeddedNATSService (if NATS_EMBEDDED)
	├── MaintenanceSupervisor ("maintenance-layer")
	│   ├── CacheJanitorService "engine" (if RECOMMEND_CACHE_ENABLED)
	│   └── CacheJanitorService "gateway" (if GATEWAY_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog into the zerolog-backed slog handler.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddMaintenanceService(services.NewCacheJanitorService("gateway", svc.Cache(), time.Minute))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("supervisor stopped")
	}
*/
package supervisor
