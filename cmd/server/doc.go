// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

/*
Package main is the entry point for the GameSphere server application.

GameSphere recommends games and teammates to players of a gaming community
and scores the quality of proposed matches. Requests carry everything the
engine needs: the player's history and preferences, community profiles,
match outcomes and the game catalog. The service keeps no user data.

# Application Architecture

The server implements a layered architecture with Suture v4 process supervision:

	RootSupervisor ("gamesphere")
	├── MessagingSupervisor ("messaging-layer")
	│   └── Embedded NATS server (optional, NATS_EMBEDDED=true)
	├── MaintenanceSupervisor ("maintenance-layer")
	│   ├── Engine cache janitor (RECOMMEND_CACHE_ENABLED=true)
	│   └── Gateway cache janitor (GATEWAY_ENABLED=true)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

# Endpoints

	GET  /health              Liveness
	POST /matchmaking/score   Match quality score
	POST /recommend           Recommendations (x-api-key when AI_API_KEY is set)
	POST /ai/recommend        Gateway recommendations (bearer token, GATEWAY_ENABLED=true)
	GET  /metrics             Prometheus metrics
	GET  /swagger/*           API documentation

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
  - Environment variables
  - Config file (config.yaml, or CONFIG_PATH)
  - Built-in defaults

See package config for the full list of variables.

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:
  - Stops accepting new connections
  - Waits for in-flight requests to complete (SHUTDOWN_TIMEOUT, default 10s)
  - Stops the embedded NATS server if enabled
  - Closes the event publisher

# Example Usage

Development, no API key:

	./gamesphere

Production with the gateway scoring in-process:

	export ENVIRONMENT=production
	export AI_API_KEY=$(openssl rand -hex 32)
	export GATEWAY_ENABLED=true
	export JWT_SECRET=$(openssl rand -base64 32)
	./gamesphere

Gateway in front of a separate scoring deployment, publishing events to an
embedded broker:

	export GATEWAY_ENABLED=true
	export JWT_SECRET=$(openssl rand -base64 32)
	export AI_SERVICE_URL=http://scoring:8000
	export AI_SERVICE_API_KEY=shared-key
	export NATS_ENABLED=true
	export NATS_EMBEDDED=true
	./gamesphere
*/
package main
