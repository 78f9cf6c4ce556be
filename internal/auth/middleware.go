// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/tomtom215/gamesphere/internal/logging"
	"github.com/tomtom215/gamesphere/internal/middleware"
)

type contextKey string

// ClaimsContextKey is the context key holding validated *Claims.
const ClaimsContextKey contextKey = "claims"

// ErrMsgUnauthorized is the detail returned for rejected bearer tokens.
const ErrMsgUnauthorized = "Unauthorized"

// Middleware provides bearer token authentication
type Middleware struct {
	jwtManager *JWTManager
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(jwtManager *JWTManager) *Middleware {
	return &Middleware{jwtManager: jwtManager}
}

// Authenticate requires a valid "Authorization: Bearer <token>" header and
// stores the claims in the request context.
func (m *Middleware) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.jwtManager.ValidateToken(extractBearerToken(r.Header.Get("Authorization")))
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("token validation failed")
			middleware.WriteDetail(w, http.StatusUnauthorized, ErrMsgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// extractBearerToken returns the token of a Bearer authorization header, or "".
func extractBearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// ClaimsFromContext returns the claims stored by Authenticate.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok
}

// SubjectFromContext returns the authenticated user id, or "".
func SubjectFromContext(ctx context.Context) string {
	if claims, ok := ClaimsFromContext(ctx); ok {
		return claims.Subject
	}
	return ""
}
