// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/gamesphere/internal/events"
)

// mockBroker is a test double for EmbeddedBroker.
type mockBroker struct {
	running       atomic.Bool
	shutdownCalls atomic.Int32
}

func (m *mockBroker) IsRunning() bool { return m.running.Load() }

func (m *mockBroker) Shutdown(context.Context) error {
	m.shutdownCalls.Add(1)
	m.running.Store(false)
	return nil
}

func TestEmbeddedNATSService_ShutsDownOnCancel(t *testing.T) {
	broker := &mockBroker{}
	broker.running.Store(true)
	svc := NewEmbeddedNATSService(broker, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() error = %v, want context.Canceled", err)
	}
	if broker.shutdownCalls.Load() != 1 {
		t.Errorf("Shutdown calls = %d, want 1", broker.shutdownCalls.Load())
	}
}

func TestEmbeddedNATSService_DeadBrokerIsNotRestarted(t *testing.T) {
	broker := &mockBroker{}
	svc := NewEmbeddedNATSService(broker, time.Second)
	svc.checkInterval = 5 * time.Millisecond

	err := svc.Serve(context.Background())
	if !errors.Is(err, suture.ErrDoNotRestart) {
		t.Errorf("Serve() error = %v, want suture.ErrDoNotRestart", err)
	}
}

func TestEmbeddedNATSService_RealServer(t *testing.T) {
	ns, err := events.NewEmbeddedServer(events.ServerConfig{Host: "127.0.0.1", Port: server.RANDOM_PORT})
	if err != nil {
		t.Fatalf("NewEmbeddedServer() error = %v", err)
	}
	svc := NewEmbeddedNATSService(ns, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	if !ns.IsRunning() {
		t.Fatal("server should be running")
	}
	cancel()
	<-done
	if ns.IsRunning() {
		t.Error("server should be stopped after the service stops")
	}
}
