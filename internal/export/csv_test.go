package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DylanJ17/batchcode/internal/cli"
	"github.com/DylanJ17/batchcode/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWriteCSV(t *testing.T) {
	codes := []string{"500903", "ZZZZ"}
	results := []model.AnalysisResult{
		{
			{
				Pattern:    "YDDD BB",
				Production: date(2025, time.January, 9),
				Expiry:     date(2028, time.January, 9),
				Confidence: 88,
				Tier:       model.TierVeryHigh,
			},
			{
				Pattern:    "Legacy YYDDD",
				Production: date(2016, time.January, 23),
				Expiry:     date(2019, time.January, 23),
				Confidence: 70,
				Tier:       model.TierHigh,
			},
		},
		{},
	}

	var b strings.Builder
	require.NoError(t, WriteCSV(&b, codes, results, cli.DateFormatUK))

	want := strings.Join([]string{
		"Code,Pattern,Production Date,Expiry Date,Confidence,Tier",
		"500903,YDDD BB,09/01/2025,09/01/2028,88,Very High",
		"500903,Legacy YYDDD,23/01/2016,23/01/2019,70,High",
		"ZZZZ,Unknown,N/A,N/A,0,Low",
		"",
	}, "\n")
	assert.Equal(t, want, b.String())
}

func TestWriteCSVUSDates(t *testing.T) {
	codes := []string{"500903"}
	results := []model.AnalysisResult{
		{
			{
				Pattern:    "YDDD BB",
				Production: date(2025, time.January, 9),
				Expiry:     date(2028, time.January, 9),
				Confidence: 88,
				Tier:       model.TierVeryHigh,
			},
		},
	}

	var b strings.Builder
	require.NoError(t, WriteCSV(&b, codes, results, cli.DateFormatUS))
	assert.Contains(t, b.String(), "01/09/2025")
}

func TestWriteCSVLengthMismatch(t *testing.T) {
	var b strings.Builder
	err := WriteCSV(&b, []string{"a", "b"}, []model.AnalysisResult{{}}, cli.DateFormatUK)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "length mismatch")
}
