// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/gamesphere/internal/breaker"
	"github.com/tomtom215/gamesphere/internal/recommend"
)

// ErrServiceUnavailable wraps every failure of the remote scoring call:
// transport errors, timeouts, non-200 responses, undecodable bodies, an
// open circuit breaker and an exhausted rate limit.
var ErrServiceUnavailable = errors.New("scoring service unavailable")

// maxResponseBytes bounds the size of a scoring response body.
const maxResponseBytes = 4 << 20

// ClientConfig configures the remote scoring client.
type ClientConfig struct {
	// BaseURL is the scoring service root; "/recommend" is appended.
	BaseURL string

	// APIKey is sent as x-api-key when non-empty.
	APIKey string

	// Timeout bounds each call, including waiting for the rate limiter.
	Timeout time.Duration

	RequestsPerSecond float64
	Burst             int

	Breaker breaker.Config
}

// Client calls a remote scoring service over HTTP.
type Client struct {
	endpoint   string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *breaker.Breaker[*recommend.Response]
}

// NewClient creates a scoring client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 4 * time.Second
	}
	if cfg.Breaker.Name == "" {
		cfg.Breaker.Name = "scoring-service"
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		endpoint:   strings.TrimRight(cfg.BaseURL, "/") + "/recommend",
		apiKey:     cfg.APIKey,
		timeout:    cfg.Timeout,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(limit, burst),
		breaker:    breaker.New[*recommend.Response](cfg.Breaker),
	}
}

// Recommend posts req to the scoring service.
func (c *Client) Recommend(ctx context.Context, req *recommend.Request) (*recommend.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit: %w", ErrServiceUnavailable, err)
	}

	resp, err := c.breaker.Execute(func() (*recommend.Response, error) {
		return c.post(ctx, req)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	return resp, nil
}

// BreakerState exposes the circuit breaker state for health reporting.
func (c *Client) BreakerState() string {
	return c.breaker.State()
}

func (c *Client) post(ctx context.Context, req *recommend.Request) (*recommend.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("x-api-key", c.apiKey)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(httpResp.Body, maxResponseBytes))
		return nil, fmt.Errorf("unexpected status %d", httpResp.StatusCode)
	}

	var resp recommend.Response
	if err := json.NewDecoder(io.LimitReader(httpResp.Body, maxResponseBytes)).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &resp, nil
}
