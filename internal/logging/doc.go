// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

// Package logging provides centralized zerolog-based structured logging for GameSphere.
//
// JSON output is intended for production and console output for development.
// A global logger is configured once from main and then used through the
// package-level helpers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Gateway fallback")
//
// Request and correlation IDs are propagated through context.Context by the
// HTTP middleware and picked up by Ctx.
//
// SlogHandler bridges zerolog to log/slog for the suture supervisor tree.
//
// # Configuration
//
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
package logging
