// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type testItem struct {
	ID    string   `json:"game_id" validate:"required"`
	Hours *float64 `json:"hours_played" validate:"omitempty,gte=0"`
}

type testRequest struct {
	Skill   *int       `json:"player_skill" validate:"required,min=1,max=10"`
	Latency *int       `json:"latency_ms" validate:"required,min=0,max=300"`
	Score   float64    `json:"success_score" validate:"gte=0,lte=1"`
	Name    string     `json:"name" validate:"omitempty,min=3"`
	Items   []testItem `json:"items" validate:"dive"`
	Ignored string     `json:"-"`
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		input      testRequest
		wantFields []string
		wantMsg    string
	}{
		{
			name:  "valid",
			input: testRequest{Skill: intPtr(5), Latency: intPtr(0), Score: 1, Items: []testItem{{ID: "g1"}}},
		},
		{
			name:       "missing required pointers",
			input:      testRequest{},
			wantFields: []string{"player_skill", "latency_ms"},
			wantMsg:    "player_skill is required",
		},
		{
			name:       "out of range",
			input:      testRequest{Skill: intPtr(11), Latency: intPtr(301), Score: 1.5},
			wantFields: []string{"player_skill", "latency_ms", "success_score"},
			wantMsg:    "player_skill must be at most 10",
		},
		{
			name:       "zero skill is present but below minimum",
			input:      testRequest{Skill: intPtr(0), Latency: intPtr(10)},
			wantFields: []string{"player_skill"},
			wantMsg:    "player_skill must be at least 1",
		},
		{
			name:       "string length",
			input:      testRequest{Skill: intPtr(1), Latency: intPtr(1), Name: "ab"},
			wantFields: []string{"name"},
			wantMsg:    "name must be at least 3 characters",
		},
		{
			name: "nested dive paths",
			input: testRequest{
				Skill:   intPtr(3),
				Latency: intPtr(3),
				Items:   []testItem{{ID: "ok"}, {ID: "", Hours: floatPtr(-1)}},
			},
			wantFields: []string{"items[1].game_id", "items[1].hours_played"},
			wantMsg:    "items[1].hours_played must be greater than or equal to 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)
			if len(tt.wantFields) == 0 {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}

			var fields []string
			for _, fe := range verr.Errors() {
				fields = append(fields, fe.Field)
			}
			if strings.Join(fields, ",") != strings.Join(tt.wantFields, ",") {
				t.Errorf("fields = %v, want %v", fields, tt.wantFields)
			}
			if !strings.Contains(verr.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want it to contain %q", verr.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRequestValidationError_Error(t *testing.T) {
	if got := NewRequestValidationError().Error(); got != "validation failed" {
		t.Errorf("empty Error() = %q", got)
	}

	verr := NewRequestValidationError(
		FieldError{Field: "a", Tag: "required", Message: "a is required"},
		FieldError{Field: "b", Tag: "json", Message: "b is malformed"},
	)
	if got := verr.Error(); got != "a is required; b is malformed" {
		t.Errorf("Error() = %q", got)
	}
	if fe := verr.Errors()[0]; fe.Error() != "a is required" {
		t.Errorf("FieldError.Error() = %q", fe.Error())
	}
}
