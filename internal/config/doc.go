// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

/*
Package config provides centralized configuration management for GameSphere.

Configuration is loaded with Koanf in three layers, later layers overriding
earlier ones:

 1. Struct defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, ./config.yaml or /etc/gamesphere/config.yaml
 3. Environment variables

Only mapped environment variables are read. Unknown variables are ignored.

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - HTTP_TIMEOUT: Request timeout (default: 30s)
  - ENVIRONMENT: development or production (default: development)

Security:
  - AI_API_KEY: Shared key required in the x-api-key header of /recommend
  - JWT_SECRET: HS256 secret for /ai/recommend bearer tokens (min 32 chars)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQS, RATE_LIMIT_WINDOW: Per-IP request limit (default: 120 per 1m)

Gateway:
  - GATEWAY_ENABLED: Serve POST /ai/recommend (default: false)
  - AI_SERVICE_URL: Remote scoring base URL. Empty scores in-process.
  - AI_SERVICE_API_KEY: Key forwarded as x-api-key to the scoring service
  - AI_TIMEOUT_MS: Scoring call timeout (default: 4000)
  - AI_CACHE_TTL_SECONDS: Response cache TTL (default: 300)
  - AI_CACHE_MAX: Response cache capacity (default: 500)

Events:
  - NATS_ENABLED, NATS_URL, NATS_EMBEDDED, NATS_SUBJECT_PREFIX

Recommendation and matchmaking constants use the RECOMMEND_* and MATCH_*
prefixes; see envMappings for the complete list.

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	engine, err := recommend.NewEngine(cfg.RecommendEngineConfig(), logger)
*/
package config
