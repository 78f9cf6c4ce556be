// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package services

import (
	"context"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/gamesphere/internal/logging"
)

// EmbeddedBroker is the lifecycle of an already started in-process broker.
// *events.EmbeddedServer satisfies it.
type EmbeddedBroker interface {
	IsRunning() bool
	Shutdown(ctx context.Context) error
}

// EmbeddedNATSService owns the shutdown of the embedded NATS server.
//
// The server is started before the tree so that the event publisher can
// connect during startup. The service watches it and shuts it down when
// the tree stops. A broker that dies on its own cannot be restarted in
// place, so the service then stops with suture.ErrDoNotRestart and event
// publishing degrades to logged failures.
type EmbeddedNATSService struct {
	broker          EmbeddedBroker
	checkInterval   time.Duration
	shutdownTimeout time.Duration
}

// NewEmbeddedNATSService creates the service.
func NewEmbeddedNATSService(broker EmbeddedBroker, shutdownTimeout time.Duration) *EmbeddedNATSService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &EmbeddedNATSService{
		broker:          broker,
		checkInterval:   5 * time.Second,
		shutdownTimeout: shutdownTimeout,
	}
}

// Serve implements suture.Service.
func (s *EmbeddedNATSService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
			defer cancel()
			if err := s.broker.Shutdown(shutdownCtx); err != nil {
				logging.Warn().Err(err).Msg("embedded NATS server shutdown incomplete")
			}
			return ctx.Err()

		case <-ticker.C:
			if !s.broker.IsRunning() {
				logging.Error().Msg("embedded NATS server stopped unexpectedly")
				return suture.ErrDoNotRestart
			}
		}
	}
}

// String implements fmt.Stringer for suture logs.
func (s *EmbeddedNATSService) String() string {
	return "embedded-nats"
}
