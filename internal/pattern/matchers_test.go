package pattern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DylanJ17/batchcode/internal/model"
)

var testRef = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// byPattern filters candidates for one pattern.
func byPattern(candidates []model.Candidate, name string) []model.Candidate {
	var out []model.Candidate
	for _, c := range candidates {
		if c.Pattern == name {
			out = append(out, c)
		}
	}
	return out
}

func TestRegistrySpecs(t *testing.T) {
	specs := NewRegistry().Specs()
	require.Len(t, specs, 8)

	seen := make(map[string]bool)
	for _, spec := range specs {
		assert.NotEmpty(t, spec.Name)
		assert.NotEmpty(t, spec.Shape)
		assert.GreaterOrEqual(t, spec.BaseConfidence, 0)
		assert.LessOrEqual(t, spec.BaseConfidence, 100)
		assert.False(t, seen[spec.Name], "duplicate pattern %s", spec.Name)
		seen[spec.Name] = true
	}
}

func TestMatchYDDDBB(t *testing.T) {
	r := NewRegistry()

	t.Run("current decade", func(t *testing.T) {
		got := byPattern(r.Match("500903", testRef), NameYDDDBB)
		require.Len(t, got, 1)
		assert.Equal(t, date(2025, time.January, 9), got[0].Production)
		assert.Equal(t, 9, got[0].JulianDay)
		assert.Equal(t, "03", got[0].Batch)
		assert.Equal(t, 98, got[0].RawConfidence)
	})

	t.Run("future year digit rolls back a decade", func(t *testing.T) {
		got := byPattern(r.Match("901512", testRef), NameYDDDBB)
		require.Len(t, got, 1)
		assert.Equal(t, date(2019, time.January, 15), got[0].Production)
	})

	t.Run("julian overflow fails structurally", func(t *testing.T) {
		assert.Empty(t, byPattern(r.Match("540012", testRef), NameYDDDBB))
	})
}

func TestMatchPrefixYYMMSuffix(t *testing.T) {
	r := NewRegistry()

	t.Run("day defaults to first of month", func(t *testing.T) {
		got := byPattern(r.Match("H2401B", testRef), NamePrefixYYMMSuffix)
		require.Len(t, got, 1)
		assert.Equal(t, date(2024, time.January, 1), got[0].Production)
		assert.Equal(t, "H", got[0].Prefix)
		assert.Equal(t, "B", got[0].Suffix)
	})

	t.Run("invalid month", func(t *testing.T) {
		assert.Empty(t, byPattern(r.Match("H2413B", testRef), NamePrefixYYMMSuffix))
	})
}

func TestMatchJulianSuffix(t *testing.T) {
	r := NewRegistry()

	t.Run("julian day in resolved year", func(t *testing.T) {
		got := byPattern(r.Match("250241", testRef), NameJulianSuffix)
		require.Len(t, got, 1)
		assert.Equal(t, date(2024, time.September, 6), got[0].Production)
		assert.Equal(t, 250, got[0].JulianDay)
		assert.Equal(t, "1", got[0].Suffix)
		assert.True(t, got[0].LeapVerified)
	})

	t.Run("julian overflow fails structurally", func(t *testing.T) {
		assert.Empty(t, byPattern(r.Match("400241", testRef), NameJulianSuffix))
	})
}

func TestMatchDDMMYYSuffix(t *testing.T) {
	r := NewRegistry()

	got := byPattern(r.Match("27124128", testRef), NameDDMMYYSuffix)
	require.Len(t, got, 2)

	// Slicings are tried exhaustively; both readings are structurally valid.
	assert.Equal(t, date(2024, time.January, 27), got[0].Production)
	assert.Equal(t, "128", got[0].Suffix)
	assert.Equal(t, date(1941, time.December, 27), got[1].Production)
	assert.Equal(t, "28", got[1].Suffix)
}

func TestMatchMixedAlpha(t *testing.T) {
	r := NewRegistry()

	t.Run("three leading digits decode as julian day", func(t *testing.T) {
		got := byPattern(r.Match("17924AW", testRef), NameMixedAlpha)
		require.Len(t, got, 1)
		assert.Equal(t, date(2024, time.June, 27), got[0].Production)
		assert.Equal(t, "AW", got[0].Suffix)
		assert.True(t, got[0].LeapVerified)
	})

	t.Run("four leading digits decode as day and month", func(t *testing.T) {
		got := byPattern(r.Match("110224AB", testRef), NameMixedAlpha)
		require.Len(t, got, 1)
		assert.Equal(t, date(2024, time.February, 11), got[0].Production)
		assert.Equal(t, "AB", got[0].Suffix)
	})
}

func TestMatchDDMMYY(t *testing.T) {
	r := NewRegistry()

	t.Run("direct day month year", func(t *testing.T) {
		got := byPattern(r.Match("150323", testRef), NameDDMMYY)
		require.Len(t, got, 1)
		assert.Equal(t, date(2023, time.March, 15), got[0].Production)
	})

	t.Run("impossible day fails structurally", func(t *testing.T) {
		assert.Empty(t, byPattern(r.Match("320123", testRef), NameDDMMYY))
	})
}

func TestMatchLegacyDDDYYBB(t *testing.T) {
	r := NewRegistry()

	got := byPattern(r.Match("0602401", testRef), NameLegacyDDDYYBB)
	require.Len(t, got, 1)
	assert.Equal(t, date(2024, time.February, 29), got[0].Production)
	assert.Equal(t, "01", got[0].Batch)
	assert.True(t, got[0].LeapVerified)
}

func TestMatchLegacyYYDDD(t *testing.T) {
	r := NewRegistry()

	t.Run("with suffix", func(t *testing.T) {
		got := byPattern(r.Match("16023X", testRef), NameLegacyYYDDD)
		require.Len(t, got, 1)
		assert.Equal(t, date(2016, time.January, 23), got[0].Production)
		assert.Equal(t, "X", got[0].Suffix)
	})

	t.Run("without suffix", func(t *testing.T) {
		got := byPattern(r.Match("24100", testRef), NameLegacyYYDDD)
		require.Len(t, got, 1)
		assert.Equal(t, date(2024, time.April, 9), got[0].Production)
		assert.Empty(t, got[0].Suffix)
	})
}

func TestMatchNoPattern(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.Match("ZZZZ", testRef))
}
