// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/gamesphere/internal/config"
	"github.com/tomtom215/gamesphere/internal/events"
	"github.com/tomtom215/gamesphere/internal/logging"
	"github.com/tomtom215/gamesphere/internal/supervisor"
	"github.com/tomtom215/gamesphere/internal/supervisor/services"
)

// EventComponents holds the event publishing components for lifecycle management.
type EventComponents struct {
	server    *events.EmbeddedServer
	publisher *events.NATSPublisher
}

// initEvents starts the embedded NATS server (if configured) and connects
// the event publisher. Returns nil, nil when NATS_ENABLED=false.
func initEvents(cfg *config.Config) (*EventComponents, error) {
	if !cfg.Events.Enabled {
		logging.Info().Msg("Event publishing disabled (NATS_ENABLED=false)")
		return nil, nil
	}

	components := &EventComponents{}

	natsURL := cfg.Events.URL
	if cfg.Events.EmbeddedServer {
		srv, err := events.NewEmbeddedServer(events.ServerConfig{
			Host: cfg.Events.EmbeddedHost,
			Port: cfg.Events.EmbeddedPort,
		})
		if err != nil {
			return nil, fmt.Errorf("start embedded NATS server: %w", err)
		}
		components.server = srv
		natsURL = srv.ClientURL()
		logging.Info().Str("url", natsURL).Msg("Embedded NATS server started")
	} else {
		logging.Info().Str("url", natsURL).Msg("Using external NATS server")
	}

	pub, err := events.NewNATSPublisher(
		events.DefaultPublisherConfig(natsURL, cfg.Events.SubjectPrefix),
		events.NewWatermillLogger(),
	)
	if err != nil {
		components.shutdownServer()
		return nil, fmt.Errorf("create event publisher: %w", err)
	}
	components.publisher = pub

	logging.Info().Str("subject_prefix", cfg.Events.SubjectPrefix).Msg("Event publisher ready")
	return components, nil
}

// Publisher returns the event publisher, or a no-op publisher when events
// are disabled.
func (c *EventComponents) Publisher() events.Publisher {
	if c == nil || c.publisher == nil {
		return events.NopPublisher{}
	}
	return c.publisher
}

// AddToSupervisor hands the embedded server's shutdown to the tree.
func (c *EventComponents) AddToSupervisor(tree *supervisor.SupervisorTree, shutdownTimeout time.Duration) {
	if c == nil || c.server == nil {
		return
	}
	tree.AddMessagingService(services.NewEmbeddedNATSService(c.server, shutdownTimeout))
	logging.Info().Msg("Embedded NATS server added to supervisor tree")
}

// Close flushes and closes the publisher. The embedded server is stopped
// by the supervisor tree.
func (c *EventComponents) Close() {
	if c == nil || c.publisher == nil {
		return
	}
	if err := c.publisher.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing event publisher")
	}
}

func (c *EventComponents) shutdownServer() {
	if c.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Error shutting down embedded NATS server")
	}
}
