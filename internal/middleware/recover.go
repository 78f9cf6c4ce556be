// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/tomtom215/gamesphere/internal/logging"
)

// ErrMsgInternal is the only detail a client sees for unexpected failures.
const ErrMsgInternal = "Internal server error."

// Recover converts panics into an opaque 500 response and logs the panic
// value with its stack trace. http.ErrAbortHandler is re-panicked.
func Recover(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity
				panic(rec)
			}

			logging.Ctx(r.Context()).Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("unhandled error")

			WriteDetail(w, http.StatusInternalServerError, ErrMsgInternal)
		}()

		next(w, r)
	}
}
