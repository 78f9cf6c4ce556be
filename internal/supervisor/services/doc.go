// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

// Package services adapts long-running GameSphere components to the
// suture.Service interface. Each wrapper blocks in Serve until its context
// is canceled and then shuts its component down.
package services
