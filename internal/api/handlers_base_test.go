// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/gamesphere/internal/auth"
	"github.com/tomtom215/gamesphere/internal/gateway"
	"github.com/tomtom215/gamesphere/internal/matchmaking"
	"github.com/tomtom215/gamesphere/internal/recommend"
)

const testJWTSecret = "test-secret-that-is-at-least-32-characters"

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	events []any
	done   chan struct{}
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{done: make(chan struct{}, 16)}
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, event any) error {
	p.mu.Lock()
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	p.mu.Unlock()
	p.done <- struct{}{}
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// wait blocks until n events were published or the test times out.
func (p *recordingPublisher) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-p.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d", i+1)
		}
	}
}

type testServer struct {
	handler    http.Handler
	publisher  *recordingPublisher
	jwtManager *auth.JWTManager
}

type testOptions struct {
	apiKey  string
	gateway gateway.Scorer
}

func newTestServer(t *testing.T, opts testOptions) *testServer {
	t.Helper()

	engine, err := recommend.NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	pub := newRecordingPublisher()

	handlerOpts := []HandlerOption{WithEventPublisher(pub)}
	var authMW *auth.Middleware
	jwtManager, err := auth.NewJWTManager(testJWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	if opts.gateway != nil {
		svc, err := gateway.NewService(opts.gateway, gateway.ServiceConfig{
			CacheTTL: time.Minute,
			CacheMax: 10,
		}, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewService() error = %v", err)
		}
		handlerOpts = append(handlerOpts, WithGateway(svc))
		authMW = auth.NewMiddleware(jwtManager)
	}

	handler, err := NewHandler(engine, matchmaking.NewScorer(matchmaking.DefaultConfig()), handlerOpts...)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	chiMW := NewChiMiddleware(&ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"*"},
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "Authorization", "X-API-Key"},
		RateLimitDisabled:  true,
	})

	return &testServer{
		handler:    NewRouter(handler, chiMW, opts.apiKey, authMW).SetupChi(),
		publisher:  pub,
		jwtManager: jwtManager,
	}
}

func (s *testServer) do(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return v
}
