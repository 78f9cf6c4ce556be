// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package api

import (
	"errors"
	"time"

	"github.com/tomtom215/gamesphere/internal/events"
	"github.com/tomtom215/gamesphere/internal/gateway"
	"github.com/tomtom215/gamesphere/internal/matchmaking"
	"github.com/tomtom215/gamesphere/internal/recommend"
)

// defaultRequestTimeout bounds a scoring request when none is configured.
const defaultRequestTimeout = 30 * time.Second

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_health.go: GET /health
//   - handlers_matchmaking.go: POST /matchmaking/score
//   - handlers_recommend.go: POST /recommend and POST /ai/recommend
//   - handler_event_publisher.go: event publication
type Handler struct {
	engine    *recommend.Engine
	matcher   *matchmaking.Scorer
	gateway   *gateway.Service // nil unless the gateway is enabled
	publisher events.Publisher
	timeout   time.Duration
	now       func() time.Time
}

// HandlerOption configures optional Handler dependencies.
type HandlerOption func(*Handler)

// WithGateway enables POST /ai/recommend.
func WithGateway(svc *gateway.Service) HandlerOption {
	return func(h *Handler) { h.gateway = svc }
}

// WithEventPublisher publishes scoring events. The default publishes nothing.
func WithEventPublisher(pub events.Publisher) HandlerOption {
	return func(h *Handler) {
		if pub != nil {
			h.publisher = pub
		}
	}
}

// WithRequestTimeout bounds the time spent scoring a single request.
func WithRequestTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler, err := api.NewHandler(engine, matchmaking.NewScorer(cfg.MatchmakingScorerConfig()),
//	    api.WithGateway(svc), api.WithEventPublisher(pub))
//	router := api.NewRouter(handler, chiMW, cfg.Security.APIKey, authMW)
//	http.ListenAndServe(":8000", router.SetupChi())
func NewHandler(engine *recommend.Engine, matcher *matchmaking.Scorer, opts ...HandlerOption) (*Handler, error) {
	if engine == nil {
		return nil, errors.New("api: recommendation engine is required")
	}
	if matcher == nil {
		return nil, errors.New("api: match scorer is required")
	}

	h := &Handler{
		engine:    engine,
		matcher:   matcher,
		publisher: events.NopPublisher{},
		timeout:   defaultRequestTimeout,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// GatewayEnabled reports whether POST /ai/recommend is served.
func (h *Handler) GatewayEnabled() bool {
	return h.gateway != nil
}
