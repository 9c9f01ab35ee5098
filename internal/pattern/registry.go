package pattern

import (
	"time"

	"github.com/DylanJ17/batchcode/internal/model"
)

// Pattern names. These are the stable identifiers carried on candidates,
// interpretations, and exported rows.
const (
	NameYDDDBB           = "YDDD BB"
	NamePrefixYYMMSuffix = "Prefix-YYMM-Suffix"
	NameJulianSuffix     = "Julian DDDYY + Suffix"
	NameDDMMYYSuffix     = "DDMMYY + Suffix"
	NameMixedAlpha       = "Mixed Alpha"
	NameDDMMYY           = "DDMMYY"
	NameLegacyDDDYYBB    = "Legacy DDDYYBB"
	NameLegacyYYDDD      = "Legacy YYDDD"
)

// matchFunc is one pattern's decoding algorithm. It receives the normalized
// code, the segmentations that satisfied the pattern's shape, and the
// reference date, and returns every structurally valid reading. Structural
// failure is silent: an impossible month, day, or Julian overflow simply
// yields nothing.
type matchFunc func(segs [][]string, ref time.Time) []model.Candidate

type entry struct {
	match matchFunc
	spec  model.PatternSpec
}

// Registry is the fixed, ordered catalog of batch code formats. It is built
// once at process start and is safe for concurrent use; matching never
// mutates it.
type Registry struct {
	entries []entry
}

// NewRegistry builds the registry with the full eight-format catalog.
func NewRegistry() *Registry {
	return &Registry{entries: []entry{
		{spec: specYDDDBB, match: matchYDDDBB},
		{spec: specPrefixYYMMSuffix, match: matchPrefixYYMMSuffix},
		{spec: specJulianSuffix, match: matchJulianSuffix},
		{spec: specDDMMYYSuffix, match: matchDDMMYYSuffix},
		{spec: specMixedAlpha, match: matchMixedAlpha},
		{spec: specDDMMYY, match: matchDDMMYY},
		{spec: specLegacyDDDYYBB, match: matchLegacyDDDYYBB},
		{spec: specLegacyYYDDD, match: matchLegacyYYDDD},
	}}
}

// Specs returns the catalog in registry order.
func (r *Registry) Specs() []model.PatternSpec {
	specs := make([]model.PatternSpec, len(r.entries))
	for i, e := range r.entries {
		specs[i] = e.spec
	}
	return specs
}

// Match runs every pattern against the code and returns all structurally
// valid candidates. Patterns are tried independently and exhaustively; a code
// may satisfy zero, one, or several of them.
func (r *Registry) Match(code model.BatchCode, ref time.Time) []model.Candidate {
	var candidates []model.Candidate
	for _, e := range r.entries {
		segs := segmentations(code.String(), e.spec.Shape)
		if len(segs) == 0 {
			continue
		}
		for _, c := range e.match(segs, ref) {
			c.Pattern = e.spec.Name
			c.RawConfidence = e.spec.BaseConfidence
			c.Priority = e.spec.Priority
			candidates = append(candidates, c)
		}
	}
	return dedupe(candidates)
}

// dedupe collapses candidates that decode to the same pattern and production
// date; variable-width shapes can reach one date through several slicings.
func dedupe(candidates []model.Candidate) []model.Candidate {
	type key struct {
		pattern string
		date    time.Time
	}
	seen := make(map[key]bool, len(candidates))
	out := candidates[:0]
	for _, c := range candidates {
		k := key{pattern: c.Pattern, date: c.Production}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	return out
}

// The catalog. Base confidences come from observed reliability of each format
// in historical data; priorities encode the catalog order for tie-breaking.
var (
	specYDDDBB = model.PatternSpec{
		Name:           NameYDDDBB,
		Description:    "Year digit + Julian day + batch number",
		Shape:          []model.Group{model.FixedDigits(1), model.FixedDigits(3), model.FixedDigits(2)},
		Examples:       []string{"500903", "505201", "510402"},
		BaseConfidence: 98,
		Priority:       80,
	}
	specPrefixYYMMSuffix = model.PatternSpec{
		Name:           NamePrefixYYMMSuffix,
		Description:    "Letter prefix + year + month + suffix",
		Shape:          []model.Group{model.Letters(1, 1), model.FixedDigits(2), model.FixedDigits(2), model.AlphaNum(1, 0)},
		Examples:       []string{"H2401B"},
		BaseConfidence: 95,
		Priority:       70,
	}
	specJulianSuffix = model.PatternSpec{
		Name:           NameJulianSuffix,
		Description:    "Julian day + year + numeric suffix",
		Shape:          []model.Group{model.FixedDigits(3), model.FixedDigits(2), model.Digits(1, 3)},
		Examples:       []string{"1872417", "2402416", "250241"},
		BaseConfidence: 95,
		Priority:       60,
	}
	specDDMMYYSuffix = model.PatternSpec{
		Name:           NameDDMMYYSuffix,
		Description:    "Day + month + year + numeric suffix",
		Shape:          []model.Group{model.Digits(1, 2), model.Digits(1, 2), model.FixedDigits(2), model.Digits(1, 3)},
		Examples:       []string{"27124128", "22924124", "25624125"},
		BaseConfidence: 90,
		Priority:       50,
	}
	specMixedAlpha = model.PatternSpec{
		Name:           NameMixedAlpha,
		Description:    "Date digits + year + alphabetic suffix",
		Shape:          []model.Group{model.Digits(3, 5), model.FixedDigits(2), model.Letters(1, 0)},
		Examples:       []string{"17924AW", "20424P", "10224O"},
		BaseConfidence: 90,
		Priority:       40,
	}
	specDDMMYY = model.PatternSpec{
		Name:           NameDDMMYY,
		Description:    "Day + month + year",
		Shape:          []model.Group{model.FixedDigits(2), model.FixedDigits(2), model.FixedDigits(2)},
		Examples:       []string{"150323", "052024"},
		BaseConfidence: 85,
		Priority:       30,
	}
	specLegacyDDDYYBB = model.PatternSpec{
		Name:           NameLegacyDDDYYBB,
		Description:    "Julian day + year + batch number",
		Shape:          []model.Group{model.FixedDigits(3), model.FixedDigits(2), model.FixedDigits(2)},
		Examples:       []string{"0602401", "1872417"},
		BaseConfidence: 80,
		Priority:       20,
	}
	specLegacyYYDDD = model.PatternSpec{
		Name:           NameLegacyYYDDD,
		Description:    "Year + Julian day + optional suffix",
		Shape:          []model.Group{model.FixedDigits(2), model.FixedDigits(3), model.AlphaNum(0, 0)},
		Examples:       []string{"24100AB", "16023X"},
		BaseConfidence: 80,
		Priority:       10,
	}
)
