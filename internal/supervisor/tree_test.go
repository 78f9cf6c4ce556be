// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// countingService counts starts and fails the first failN runs.
type countingService struct {
	starts  atomic.Int32
	failN   int32
	running chan struct{}
}

func newCountingService(failN int32) *countingService {
	return &countingService{failN: failN, running: make(chan struct{}, 16)}
}

func (s *countingService) Serve(ctx context.Context) error {
	n := s.starts.Add(1)
	if n <= s.failN {
		return errors.New("transient failure")
	}
	s.running <- struct{}{}
	<-ctx.Done()
	return ctx.Err()
}

func TestSupervisorTreeConstruction(t *testing.T) {
	t.Run("applies default values for zero config", func(t *testing.T) {
		tree, err := NewSupervisorTree(testLogger(), TreeConfig{})
		if err != nil {
			t.Fatalf("NewSupervisorTree() error = %v", err)
		}
		if tree.Root() == nil {
			t.Fatal("root supervisor should not be nil")
		}

		want := DefaultTreeConfig()
		if tree.config != want {
			t.Errorf("config = %+v, want %+v", tree.config, want)
		}
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		tree, err := NewSupervisorTree(testLogger(), TreeConfig{FailureBackoff: time.Second})
		if err != nil {
			t.Fatal(err)
		}
		if tree.config.FailureBackoff != time.Second {
			t.Errorf("FailureBackoff = %v, want 1s", tree.config.FailureBackoff)
		}
	})
}

func TestSupervisorTreeLifecycle(t *testing.T) {
	tree, err := NewSupervisorTree(testLogger(), TreeConfig{
		FailureBackoff:  10 * time.Millisecond,
		ShutdownTimeout: time.Second,
	})
	if err != nil {
		t.Fatal(err)
	}

	api := newCountingService(0)
	janitor := newCountingService(2)
	broker := newCountingService(0)
	tree.AddAPIService(api)
	tree.AddMaintenanceService(janitor)
	tree.AddMessagingService(broker)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	for name, svc := range map[string]*countingService{"api": api, "janitor": janitor, "broker": broker} {
		select {
		case <-svc.running:
		case <-time.After(5 * time.Second):
			t.Fatalf("%s service never reached running state", name)
		}
	}

	if got := janitor.starts.Load(); got != 3 {
		t.Errorf("janitor starts = %d, want 3 (two failures then success)", got)
	}
	if got := api.starts.Load(); got != 1 {
		t.Errorf("api starts = %d, a janitor failure must not restart the api layer", got)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("tree stopped with %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("tree did not stop")
	}

	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatalf("UnstoppedServiceReport() error = %v", err)
	}
	if len(report) != 0 {
		t.Errorf("unstopped services = %v", report)
	}
}
