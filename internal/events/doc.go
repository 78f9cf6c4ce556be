// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

// Package events publishes domain events (match scored, recommendation
// served) to NATS through Watermill. An embedded NATS server can be started
// for single-node deployments. When events are disabled the API uses
// NopPublisher.
package events
