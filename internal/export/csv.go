// Package export serializes analysis results to tabular text formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/DylanJ17/batchcode/internal/cli"
	"github.com/DylanJ17/batchcode/internal/model"
)

// csvHeader is the fixed column layout: one row per interpretation.
var csvHeader = []string{"Code", "Pattern", "Production Date", "Expiry Date", "Confidence", "Tier"}

// WriteCSV writes one row per interpretation for every analyzed code.
// Unrecognized codes get a single row marked Unknown so batch output stays
// aligned with batch input.
func WriteCSV(w io.Writer, codes []string, results []model.AnalysisResult, dateFormat cli.DateFormat) error {
	if len(codes) != len(results) {
		return fmt.Errorf("codes and results length mismatch: %d vs %d", len(codes), len(results))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, result := range results {
		if len(result) == 0 {
			if err := cw.Write([]string{codes[i], "Unknown", "N/A", "N/A", "0", string(model.TierLow)}); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
			continue
		}
		for _, in := range result {
			row := []string{
				codes[i],
				in.Pattern,
				cli.FormatDate(in.Production, dateFormat),
				cli.FormatDate(in.Expiry, dateFormat),
				strconv.Itoa(in.Confidence),
				string(in.Tier),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
