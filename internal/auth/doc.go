// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

/*
Package auth provides bearer token authentication for the recommendation gateway.

Tokens are HS256 JWTs issued by the account service and signed with the shared
JWT_SECRET. The subject claim carries the user id that recommendations are
computed for:

	manager, err := auth.NewJWTManager(cfg.Security.JWTSecret, 0)
	mw := auth.NewMiddleware(manager)
	r.With(chiMiddleware(mw.Authenticate)).Post("/ai/recommend", h.AIRecommend)

	// in the handler
	userID := auth.SubjectFromContext(r.Context())

Tokens signed with any algorithm other than HS256, expired tokens and tokens
without a subject are rejected with 401 {"detail":"Unauthorized"}.
*/
package auth
