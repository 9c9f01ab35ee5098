package model

import (
	"sort"
	"time"
)

// Candidate is the output of one matcher attempt: a structurally valid
// reading of a code before any scoring or window filtering has happened.
type Candidate struct {
	Production    time.Time
	Pattern       string
	Batch         string
	Prefix        string
	Suffix        string
	Notes         []string
	JulianDay     int
	RawConfidence int
	Priority      int
	YearAmbiguous bool
	LeapVerified  bool
}

// ConfidenceTier is the qualitative bucket a numeric confidence falls into.
type ConfidenceTier string

// Confidence tiers, derived from the final score by fixed thresholds.
const (
	TierVeryHigh ConfidenceTier = "Very High"
	TierHigh     ConfidenceTier = "High"
	TierMedium   ConfidenceTier = "Medium"
	TierLow      ConfidenceTier = "Low"
)

// TierFor maps a final confidence score to its tier.
func TierFor(confidence int) ConfidenceTier {
	switch {
	case confidence >= 85:
		return TierVeryHigh
	case confidence >= 70:
		return TierHigh
	case confidence >= 50:
		return TierMedium
	default:
		return TierLow
	}
}

// Interpretation is a scored Candidate: production and expiry dates, final
// confidence in [0,100], tier, and the notes explaining every adjustment.
type Interpretation struct {
	Production time.Time
	Expiry     time.Time
	Pattern    string
	Batch      string
	Prefix     string
	Suffix     string
	Notes      []string
	JulianDay  int
	Confidence int
	Priority   int
	Tier       ConfidenceTier
	Valid      bool
}

// AnalysisResult is the ordered list of interpretations for one code.
// Empty means the code was not recognized; it is never nil-significant.
type AnalysisResult []Interpretation

// Len implements sort.Interface.
func (r AnalysisResult) Len() int {
	return len(r)
}

// Less implements sort.Interface. Higher confidence first, then higher
// pattern priority, then pattern name, so ordering is fully deterministic.
func (r AnalysisResult) Less(i, j int) bool {
	if r[i].Confidence != r[j].Confidence {
		return r[i].Confidence > r[j].Confidence
	}
	if r[i].Priority != r[j].Priority {
		return r[i].Priority > r[j].Priority
	}
	return r[i].Pattern < r[j].Pattern
}

// Swap implements sort.Interface.
func (r AnalysisResult) Swap(i, j int) {
	r[i], r[j] = r[j], r[i]
}

// Sort orders the result best-first.
func (r AnalysisResult) Sort() {
	sort.Sort(r)
}

// Top returns the best interpretation, or nil if the code was unrecognized.
func (r AnalysisResult) Top() *Interpretation {
	if len(r) == 0 {
		return nil
	}
	return &r[0]
}

// AboveThreshold returns the interpretations at or above the given confidence.
func (r AnalysisResult) AboveThreshold(threshold int) AnalysisResult {
	var out AnalysisResult
	for _, in := range r {
		if in.Confidence >= threshold {
			out = append(out, in)
		}
	}
	return out
}
