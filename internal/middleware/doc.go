// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - RequestID: UUID-based request tracking, wired into the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - APIKey: shared-key check on the x-api-key header
  - Recover: panic to opaque 500 conversion with full server-side logging

All middleware uses the func(http.HandlerFunc) http.HandlerFunc shape. The
api package adapts them to chi with a one-line wrapper:

	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Error bodies follow the {"detail": "..."} shape written by WriteDetail.
*/
package middleware
