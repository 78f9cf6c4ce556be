// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package api

import (
	"errors"

	"github.com/tomtom215/gamesphere/internal/middleware"
)

// Client-facing error details.
const (
	ErrMsgValidation      = "Validation failed."
	ErrMsgMatchQualityLow = "Match quality too low."
	ErrMsgInternal        = middleware.ErrMsgInternal
)

// Request decoding errors.
var (
	ErrEmptyBody     = errors.New("request body is required")
	ErrMalformedBody = errors.New("request body is not valid JSON")
	ErrBodyTooLarge  = errors.New("request body is too large")
)
