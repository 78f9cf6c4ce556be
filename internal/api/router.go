// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/gamesphere/internal/auth"
	"github.com/tomtom215/gamesphere/internal/middleware"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	apiKey        string
	auth          *auth.Middleware // required for the gateway route
}

// NewRouter creates a router. apiKey guards POST /recommend and may be
// empty. authMiddleware guards POST /ai/recommend, which is only mounted
// when both it and the handler's gateway are set.
func NewRouter(handler *Handler, chiMW *ChiMiddleware, apiKey string, authMiddleware *auth.Middleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
		apiKey:        apiKey,
		auth:          authMiddleware,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID with logging context
	r.Use(chimiddleware.RealIP)                // Extract real IP from X-Forwarded-For
	r.Use(chiMiddleware(middleware.Recover))   // Opaque 500 on panic
	r.Use(router.chiMiddleware.CORS())         // CORS must be global to handle OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	// ========================
	// Health
	// ========================
	r.With(APISecurityHeaders()).Get("/health", router.handler.Health)

	// ========================
	// Scoring Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Post("/matchmaking/score", router.handler.MatchScore)
		r.With(chiMiddleware(middleware.APIKey(router.apiKey))).
			Post("/recommend", router.handler.Recommend)

		if router.auth != nil && router.handler.GatewayEnabled() {
			r.With(chiMiddleware(router.auth.Authenticate)).
				Post("/ai/recommend", router.handler.GatewayRecommend)
		}
	})

	// ========================
	// Operations
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
