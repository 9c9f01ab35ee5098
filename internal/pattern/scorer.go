package pattern

import (
	"fmt"
	"time"

	"github.com/DylanJ17/batchcode/internal/calendar"
	"github.com/DylanJ17/batchcode/internal/model"
)

// ScorerConfig holds the heuristic adjustment constants. They are tunable
// rather than hard-coded; the defaults reflect observed reliability and have
// no deeper derivation.
type ScorerConfig struct {
	// AmbiguityPenalty is subtracted once per additional pattern that also
	// matched the same code.
	AmbiguityPenalty int
	// LeapBonus rewards candidates whose date resolution provably depended
	// on correct leap-year handling.
	LeapBonus int
	// AmbiguousYearPenalty is subtracted when the two-digit year resolved
	// within a year of the century-rollover boundary.
	AmbiguousYearPenalty int
}

// DefaultScorerConfig returns the standard adjustment constants.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		AmbiguityPenalty:     10,
		LeapBonus:            5,
		AmbiguousYearPenalty: 5,
	}
}

// Scorer turns candidates into scored interpretations. Each adjustment is a
// named rule applied in a fixed order; every rule that fires leaves a
// diagnostic note so rankings stay explainable.
type Scorer struct {
	config ScorerConfig
}

// NewScorer creates a scorer with the given adjustment constants.
func NewScorer(config ScorerConfig) *Scorer {
	return &Scorer{config: config}
}

// Score evaluates one candidate. matchedPatterns is the number of distinct
// patterns that matched the same code; the ambiguity penalty applies
// identically to every competitor, preserving their relative order while
// reflecting reduced certainty. A window violation marks the interpretation
// invalid rather than merely low-confidence.
func (s *Scorer) Score(c model.Candidate, expiry time.Time, matchedPatterns int, ref time.Time) model.Interpretation {
	confidence := c.RawConfidence
	notes := append([]string(nil), c.Notes...)
	valid := true

	if !calendar.WithinProductionWindow(c.Production, ref) {
		valid = false
		notes = append(notes, "production date outside acceptable window")
	}
	if valid && !calendar.WithinExpiryWindow(expiry, ref) {
		valid = false
		notes = append(notes, "expiry date outside acceptable window")
	}

	if c.LeapVerified {
		confidence += s.config.LeapBonus
		notes = append(notes, fmt.Sprintf("leap-year resolution verified (+%d)", s.config.LeapBonus))
	}
	if matchedPatterns > 1 {
		penalty := s.config.AmbiguityPenalty * (matchedPatterns - 1)
		confidence -= penalty
		notes = append(notes, fmt.Sprintf("%d patterns matched this code (-%d)", matchedPatterns, penalty))
	}
	if c.YearAmbiguous {
		confidence -= s.config.AmbiguousYearPenalty
		notes = append(notes, fmt.Sprintf("two-digit year near century rollover (-%d)", s.config.AmbiguousYearPenalty))
	}

	confidence = clamp(confidence, 0, 100)

	return model.Interpretation{
		Production: c.Production,
		Expiry:     expiry,
		Pattern:    c.Pattern,
		Batch:      c.Batch,
		Prefix:     c.Prefix,
		Suffix:     c.Suffix,
		Notes:      notes,
		JulianDay:  c.JulianDay,
		Confidence: confidence,
		Priority:   c.Priority,
		Tier:       model.TierFor(confidence),
		Valid:      valid,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
