// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

/*
Package gateway serves recommendations to authenticated account holders.

The gateway accepts the camelCase payload used by clients, normalizes it
into a scoring request and asks a Scorer for recommendations. The Scorer is
either a remote scoring service reached through Client, or the in-process
recommend.Engine when no service URL is configured.

Responses are cached per user and payload for a short TTL. When the scorer
fails (timeout, non-200 status, open circuit breaker) the gateway logs a
warning and answers with recommend.Fallback instead. Fallback responses are
cached too, so a struggling scoring service is not retried for every
request of the same user.

# Client

Client posts to {BaseURL}/recommend with an optional x-api-key header. Each
call is bounded by a timeout, paced by a token bucket limiter and guarded by
a circuit breaker:

	client := gateway.NewClient(gateway.ClientConfig{
	    BaseURL: "http://ai-service:8000",
	    APIKey:  key,
	    Timeout: 4 * time.Second,
	})
	svc, err := gateway.NewService(client, gateway.ServiceConfig{
	    CacheTTL: 5 * time.Minute,
	    CacheMax: 500,
	}, logger)
	resp, source, err := svc.Recommend(ctx, userID, dto)
*/
package gateway
