// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package matchmaking

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomtom215/gamesphere/internal/recommend"
)

// ErrMatchQualityTooLow is returned when a proposed match scores below the
// rejection threshold. No partial score accompanies it.
var ErrMatchQualityTooLow = errors.New("match quality too low")

// Config holds the constants of the match quality heuristic.
type Config struct {
	// RejectBelow is the minimum acceptable score. Default: 0.2.
	RejectBelow float64 `json:"reject_below"`

	// RegionBonus is added when both players share a region. Default: 0.1.
	RegionBonus float64 `json:"region_bonus"`

	// LatencyWeight scales the normalized latency penalty. Default: 0.2.
	LatencyWeight float64 `json:"latency_weight"`

	// MaxLatencyMs is the latency at which the penalty saturates. Default: 300.
	MaxLatencyMs int `json:"max_latency_ms"`

	// SkillRange is the skill gap at which skill compatibility reaches zero. Default: 10.
	SkillRange int `json:"skill_range"`
}

// DefaultConfig returns the production heuristic constants.
func DefaultConfig() Config {
	return Config{
		RejectBelow:   0.2,
		RegionBonus:   0.1,
		LatencyWeight: 0.2,
		MaxLatencyMs:  300,
		SkillRange:    10,
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.RejectBelow < 0 || c.RejectBelow > 1 {
		return fmt.Errorf("reject_below must be in [0,1]")
	}
	if c.RegionBonus < 0 || c.LatencyWeight < 0 {
		return fmt.Errorf("region_bonus and latency_weight must be non-negative")
	}
	if c.MaxLatencyMs <= 0 {
		return fmt.Errorf("max_latency_ms must be positive")
	}
	if c.SkillRange <= 0 {
		return fmt.Errorf("skill_range must be positive")
	}
	return nil
}

// Input describes a proposed player-vs-player match.
type Input struct {
	PlayerSkill   int
	OpponentSkill int
	SameRegion    bool
	LatencyMs     int
}

// Result is an accepted match score.
type Result struct {
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

// Scorer evaluates match quality. It is stateless and safe for concurrent use.
type Scorer struct {
	cfg Config
}

// NewScorer creates a scorer.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score combines skill compatibility, region and latency into a value in
// [0,1], rounded to three decimals.
//
//	skill   = max(0, 1 - |player - opponent| / SkillRange)
//	latency = min(latency_ms / MaxLatencyMs, 1)
//	score   = clamp(skill + RegionBonus·same_region - latency·LatencyWeight, 0, 1)
//
// Scores below RejectBelow return ErrMatchQualityTooLow.
func (s *Scorer) Score(in Input) (*Result, error) {
	gap := in.PlayerSkill - in.OpponentSkill
	if gap < 0 {
		gap = -gap
	}

	skill := math.Max(0, 1-float64(gap)/float64(s.cfg.SkillRange))
	latency := math.Min(float64(in.LatencyMs)/float64(s.cfg.MaxLatencyMs), 1)
	var region float64
	if in.SameRegion {
		region = s.cfg.RegionBonus
	}

	score := math.Max(0, math.Min(1, skill+region-latency*s.cfg.LatencyWeight))
	if score < s.cfg.RejectBelow {
		return nil, ErrMatchQualityTooLow
	}

	return &Result{
		Score:     recommend.Round3(score),
		Rationale: fmt.Sprintf("Skill gap %d, latency %dms, same region %s", gap, in.LatencyMs, regionFlag(in.SameRegion)),
	}, nil
}

// regionFlag renders the region flag as the capitalized True or False that
// existing rationale consumers parse.
func regionFlag(same bool) string {
	if same {
		return "True"
	}
	return "False"
}
