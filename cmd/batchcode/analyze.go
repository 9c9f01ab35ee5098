package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/DylanJ17/batchcode/internal/cli"
	"github.com/DylanJ17/batchcode/internal/storage"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze CODE [CODE...]",
		Short: "Decode one or more batch codes",
		Long: `Decode batch codes into production and expiry dates. Every structurally
valid interpretation is shown, ranked by confidence; an ambiguous code may
have several.`,
		Args: cobra.MinimumNArgs(1),
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

			var db *storage.SQLiteStorage
			if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
				var cleanup func()
				db, cleanup, err = getDatabase(ctx)
				if err != nil {
					// History is a convenience; analysis must not fail on it.
					slog.Warn("history unavailable", "error", err)
					db = nil
				} else {
					defer cleanup()
				}
			}

			reference := clock.Now()
			for _, code := range args {
				result := analyzer.Analyze(code)
				fmt.Println(cli.RenderResult(code, result, reference, format))

				if db != nil {
					if _, err := db.SaveAnalysis(ctx, code, result); err != nil {
						slog.Warn("failed to record analysis", "code", code, "error", err)
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().Bool("no-history", false, "Do not record this analysis in history")
	return cmd
}
