// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	json "github.com/goccy/go-json"
	natsgo "github.com/nats-io/nats.go"

	"github.com/tomtom215/gamesphere/internal/breaker"
	"github.com/tomtom215/gamesphere/internal/logging"
	"github.com/tomtom215/gamesphere/internal/metrics"
)

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("publisher is closed")

// Publisher publishes domain events. Implementations are safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}

// NopPublisher discards all events. It is used when events are disabled.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, string, any) error { return nil }

// Close implements Publisher.
func (NopPublisher) Close() error { return nil }

// PublisherConfig configures a NATSPublisher.
type PublisherConfig struct {
	URL           string
	SubjectPrefix string
	MaxReconnects int
	ReconnectWait time.Duration
	Breaker       breaker.Config
}

// DefaultPublisherConfig returns reconnect and breaker defaults for url.
func DefaultPublisherConfig(url, subjectPrefix string) PublisherConfig {
	return PublisherConfig{
		URL:           url,
		SubjectPrefix: subjectPrefix,
		MaxReconnects: -1,
		ReconnectWait: 2 * time.Second,
		Breaker: breaker.Config{
			Name:             "nats-publisher",
			MaxRequests:      1,
			Interval:         time.Minute,
			Timeout:          30 * time.Second,
			FailureThreshold: 5,
		},
	}
}

// NATSPublisher publishes JSON events to core NATS through Watermill with
// circuit breaker protection.
type NATSPublisher struct {
	publisher message.Publisher
	breaker   *breaker.Breaker[struct{}]
	prefix    string
	logger    watermill.LoggerAdapter

	mu     sync.RWMutex
	closed bool
}

// NewNATSPublisher connects a Watermill NATS publisher. The connection is
// retried in the background, so an unreachable server does not fail startup.
func NewNATSPublisher(cfg PublisherConfig, logger watermill.LoggerAdapter) (*NATSPublisher, error) {
	if logger == nil {
		logger = NewWatermillLogger()
	}

	natsOpts := []natsgo.Option{
		natsgo.Name("gamesphere"),
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(cfg.MaxReconnects),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{"url": nc.ConnectedUrl()})
		}),
	}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         cfg.URL,
		NatsOptions: natsOpts,
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream:   wmNats.JetStreamConfig{Disabled: true},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill publisher: %w", err)
	}

	return &NATSPublisher{
		publisher: pub,
		breaker:   breaker.New[struct{}](cfg.Breaker),
		prefix:    cfg.SubjectPrefix,
		logger:    logger,
	}, nil
}

// Subject returns the NATS subject for topic.
func (p *NATSPublisher) Subject(topic string) string {
	return subject(p.prefix, topic)
}

func subject(prefix, topic string) string {
	if prefix == "" {
		return topic
	}
	return prefix + "." + topic
}

// Publish serializes event as JSON and publishes it to the topic subject.
// The request correlation ID travels as message metadata.
func (p *NATSPublisher) Publish(ctx context.Context, topic string, event any) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serialize event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("content-type", "application/json")
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set("correlation_id", id)
	}

	_, err = p.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, p.publisher.Publish(p.Subject(topic), msg)
	})
	metrics.RecordEventPublish(topic, err)
	if err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// Close flushes and closes the underlying connection.
func (p *NATSPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.publisher.Close()
}

// PublishAsync publishes in the background and logs failures. Event
// delivery never affects the response of the request that produced it.
func PublishAsync(ctx context.Context, pub Publisher, topic string, event any) {
	if pub == nil {
		return
	}
	if _, ok := pub.(NopPublisher); ok {
		return
	}

	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := pub.Publish(ctx, topic, event); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("topic", topic).Msg("event publish failed")
		}
	}()
}
