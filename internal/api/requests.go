// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gamesphere/internal/validation"
)

// maxBodyBytes bounds request bodies. Recommendation payloads carry whole
// community profiles and catalogs, so the limit is generous.
const maxBodyBytes = 8 << 20

// MatchScoreRequest is the body of POST /matchmaking/score. Pointer fields
// distinguish a missing value from zero.
type MatchScoreRequest struct {
	PlayerSkill   *int  `json:"player_skill" validate:"required,min=1,max=10"`
	OpponentSkill *int  `json:"opponent_skill" validate:"required,min=1,max=10"`
	SameRegion    *bool `json:"same_region"`
	LatencyMs     *int  `json:"latency_ms" validate:"required,min=0,max=300"`
}

// sameRegion defaults to true when the field is omitted.
func (m *MatchScoreRequest) sameRegion() bool {
	return m.SameRegion == nil || *m.SameRegion
}

// decodeJSON reads a JSON body into dst and validates it. The returned
// error is either a *validation.RequestValidationError or an internal
// read failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return bodyError(ErrBodyTooLarge)
		}
		return fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		return bodyError(ErrEmptyBody)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return bodyError(fmt.Errorf("%w: %s", ErrMalformedBody, err.Error()))
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		return verr
	}
	return nil
}

// bodyError reports an undecodable body as a validation failure of the
// body itself.
func bodyError(err error) *validation.RequestValidationError {
	return validation.NewRequestValidationError(validation.FieldError{
		Field:   "body",
		Tag:     "json",
		Message: err.Error(),
	})
}

// respondDecodeError writes the response for an error from decodeJSON.
func respondDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		respondValidationError(w, verr)
		return
	}
	respondInternalError(w, r, err)
}
