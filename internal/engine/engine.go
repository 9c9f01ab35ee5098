// Package engine orchestrates batch code analysis: it runs every pattern
// matcher against a code, scores the surviving candidates, and returns the
// ranked interpretations.
package engine

import (
	"log/slog"

	"github.com/DylanJ17/batchcode/internal/calendar"
	"github.com/DylanJ17/batchcode/internal/common"
	"github.com/DylanJ17/batchcode/internal/model"
	"github.com/DylanJ17/batchcode/internal/pattern"
)

// Analyzer decodes batch codes into ranked interpretations. It is a pure
// function of (code, clock) plus the static pattern catalog, so one instance
// is safe for concurrent use.
type Analyzer struct {
	registry *pattern.Registry
	scorer   *pattern.Scorer
	clock    calendar.Clock
}

// New creates an analyzer with default scoring constants. A nil clock is
// programmer misuse and the only hard error this package raises.
func New(clock calendar.Clock) (*Analyzer, error) {
	return NewWithConfig(clock, pattern.DefaultScorerConfig())
}

// NewWithConfig creates an analyzer with custom scoring constants.
func NewWithConfig(clock calendar.Clock, config pattern.ScorerConfig) (*Analyzer, error) {
	if clock == nil {
		return nil, common.ErrNilClock
	}
	return &Analyzer{
		registry: pattern.NewRegistry(),
		scorer:   pattern.NewScorer(config),
		clock:    clock,
	}, nil
}

// Registry exposes the pattern catalog, for listing and display.
func (a *Analyzer) Registry() *pattern.Registry {
	return a.registry
}

// Analyze decodes one batch code. Malformed or unrecognized input is an
// expected outcome, not an error: the result is simply empty.
func (a *Analyzer) Analyze(raw string) model.AnalysisResult {
	code := model.NormalizeCode(raw)
	if code.IsEmpty() {
		return model.AnalysisResult{}
	}

	ref := a.clock.Now()
	candidates := a.registry.Match(code, ref)
	if len(candidates) == 0 {
		slog.Debug("no pattern matched", "code", code.String())
		return model.AnalysisResult{}
	}

	matched := distinctPatterns(candidates)

	result := make(model.AnalysisResult, 0, len(candidates))
	for _, c := range candidates {
		expiry := calendar.AddYears(c.Production, calendar.ShelfLifeYears)
		interp := a.scorer.Score(c, expiry, matched, ref)
		if !interp.Valid {
			slog.Debug("interpretation outside validity window",
				"code", code.String(),
				"pattern", interp.Pattern,
				"production", interp.Production.Format("2006-01-02"))
			continue
		}
		result = append(result, interp)
	}

	result = suppressShadowedReadings(result)
	result.Sort()
	return result
}

// AnalyzeAll decodes many codes independently. The returned slice is
// index-aligned with the input; a bad entry yields an empty result for that
// index and never aborts the run.
func (a *Analyzer) AnalyzeAll(raws []string) []model.AnalysisResult {
	results := make([]model.AnalysisResult, len(raws))
	for i, raw := range raws {
		results[i] = a.Analyze(raw)
	}
	return results
}

// distinctPatterns counts how many different patterns produced a candidate.
func distinctPatterns(candidates []model.Candidate) int {
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		seen[c.Pattern] = true
	}
	return len(seen)
}

// julianFirstPatterns lead with the Julian day. When one of these readings
// holds up, a competing YDDD BB reading of the same digits is almost always a
// mis-slicing, so it is suppressed.
var julianFirstPatterns = map[string]bool{
	pattern.NameJulianSuffix:  true,
	pattern.NameLegacyDDDYYBB: true,
}

func suppressShadowedReadings(result model.AnalysisResult) model.AnalysisResult {
	hasJulianFirst := false
	hasYDDD := false
	for _, in := range result {
		if julianFirstPatterns[in.Pattern] {
			hasJulianFirst = true
		}
		if in.Pattern == pattern.NameYDDDBB {
			hasYDDD = true
		}
	}
	if !hasJulianFirst || !hasYDDD {
		return result
	}

	out := result[:0]
	for _, in := range result {
		if in.Pattern == pattern.NameYDDDBB {
			continue
		}
		out = append(out, in)
	}
	return out
}
