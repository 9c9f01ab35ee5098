package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/DylanJ17/batchcode/internal/cli"
	"github.com/DylanJ17/batchcode/internal/common"
	"github.com/DylanJ17/batchcode/internal/export"
	"github.com/DylanJ17/batchcode/internal/model"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Decode many batch codes at once",
		Long: `Read batch codes (one per line) from a file or stdin and decode them all.
Each code is analyzed independently; a malformed entry never aborts the run.
Results can be written to CSV with --output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			analyzer, clock, err := newAnalyzer(cmd)
			if err != nil {
				return err
			}

			format, err := dateFormat()
			if err != nil {
				return err
			}

			codes, err := readCodes(args)
			if err != nil {
				return err
			}
			if len(codes) == 0 {
				return fmt.Errorf("no codes to process")
			}

			workers, _ := cmd.Flags().GetInt("workers")
			if workers <= 0 {
				workers = runtime.NumCPU()
			}

			bar := progressbar.NewOptions(len(codes),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Analyzing codes..."),
			)

			// Each analysis is independent; results stay index-aligned.
			results := make([]model.AnalysisResult, len(codes))
			g, _ := errgroup.WithContext(ctx)
			g.SetLimit(workers)
			for i, code := range codes {
				g.Go(func() error {
					results[i] = analyzer.Analyze(code)
					_ = bar.Add(1)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr)

			if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
				if db, cleanup, dbErr := getDatabase(ctx); dbErr != nil {
					slog.Warn("history unavailable", "error", dbErr)
				} else {
					defer cleanup()
					for i, code := range codes {
						if _, err := db.SaveAnalysis(ctx, code, results[i]); err != nil {
							slog.Warn("failed to record analysis", "code", code, "error", err)
						}
					}
				}
			}

			if output, _ := cmd.Flags().GetString("output"); output != "" {
				if err := writeCSVFile(output, codes, results, format); err != nil {
					return err
				}
				common.LogInfo("wrote CSV export", common.Fields{"path": output, "codes": len(codes)})
			}

			return printBatchTable(os.Stdout, codes, results, clock.Now(), format)
		},
	}

	cmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: CPU count)")
	cmd.Flags().StringP("output", "o", "", "Write results to a CSV file")
	cmd.Flags().Bool("no-history", false, "Do not record analyses in history")
	return cmd
}

// readCodes reads one code per line from the named file, or stdin when no
// file is given. Blank lines are skipped.
func readCodes(args []string) ([]string, error) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, common.NewUserError(fmt.Sprintf("cannot read codes from %s", args[0]), err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var codes []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if code := model.NormalizeCode(scanner.Text()); !code.IsEmpty() {
			codes = append(codes, code.String())
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read codes: %w", err)
	}
	return codes, nil
}

func writeCSVFile(path string, codes []string, results []model.AnalysisResult, format cli.DateFormat) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return export.WriteCSV(f, codes, results, format)
}

// printBatchTable shows one row per code using its best interpretation.
func printBatchTable(w io.Writer, codes []string, results []model.AnalysisResult, reference time.Time, format cli.DateFormat) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "CODE\tPATTERN\tPRODUCTION\tEXPIRY\tCONFIDENCE\tTIER\tSTATUS")
	_, _ = fmt.Fprintln(tw, "────\t───────\t──────────\t──────\t──────────\t────\t──────")

	recognized := 0
	for i, result := range results {
		top := result.Top()
		if top == nil {
			_, _ = fmt.Fprintf(tw, "%s\tUnknown\tN/A\tN/A\t0%%\t%s\tunrecognized\n", codes[i], model.TierLow)
			continue
		}
		recognized++
		status := cli.StatusForExpiry(top.Expiry, reference)
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d%%\t%s\t%s\n",
			codes[i],
			truncateString(top.Pattern, 24),
			cli.FormatDate(top.Production, format),
			cli.FormatDate(top.Expiry, format),
			top.Confidence,
			top.Tier,
			status.Label)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "\nProcessed %d codes, %d recognized\n", len(codes), recognized)
	return nil
}
