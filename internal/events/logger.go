// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package events

import (
	"github.com/ThreeDotsLabs/watermill"

	"github.com/tomtom215/gamesphere/internal/logging"
)

// NewWatermillLogger routes Watermill logs through the global zerolog
// logger via the slog bridge.
func NewWatermillLogger() watermill.LoggerAdapter {
	return watermill.NewSlogLogger(logging.NewSlogLogger().With("component", "events"))
}
