package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DylanJ17/batchcode/internal/cli"
	"github.com/DylanJ17/batchcode/internal/common"
	"github.com/DylanJ17/batchcode/internal/model"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage the analysis history",
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())
	cmd.AddCommand(historyClearCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recently analyzed codes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			format, err := dateFormat()
			if err != nil {
				return err
			}

			limit, _ := cmd.Flags().GetInt("limit")
			records, err := db.ListAnalyses(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list history: %w", err)
			}

			if len(records) == 0 {
				fmt.Println("No analysis history yet")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "WHEN\tCODE\tPATTERN\tPRODUCTION\tEXPIRY\tCONFIDENCE\tTIER")
			_, _ = fmt.Fprintln(w, "────\t────\t───────\t──────────\t──────\t──────────\t────")

			for _, r := range records {
				production, expiry := "N/A", "N/A"
				if r.Production != nil {
					production = cli.FormatDate(*r.Production, format)
				}
				if r.Expiry != nil {
					expiry = cli.FormatDate(*r.Expiry, format)
				}
				patternName := r.Pattern
				if !r.Recognized() {
					patternName = "Unknown"
				}

				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d%%\t%s\n",
					r.AnalyzedAt.Format("2006-01-02 15:04"),
					r.Code,
					truncateString(patternName, 24),
					production,
					expiry,
					r.Confidence,
					r.Tier)
			}

			return w.Flush()
		},
	}

	cmd.Flags().IntP("limit", "n", 50, "Maximum number of records to show")
	return cmd
}

func historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show CODE",
		Short: "Show the latest stored analysis for one code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			code := model.NormalizeCode(args[0]).String()

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			format, err := dateFormat()
			if err != nil {
				return err
			}

			record, err := db.LatestAnalysis(ctx, code)
			if errors.Is(err, common.ErrNotFound) {
				return common.NewUserError(fmt.Sprintf("no analysis history for %q", code), nil)
			}
			if err != nil {
				return err
			}

			fmt.Printf("Code:            %s\n", record.Code)
			fmt.Printf("Analyzed:        %s\n", record.AnalyzedAt.Format("2006-01-02 15:04"))
			if !record.Recognized() {
				fmt.Println("Pattern:         Unknown")
				return nil
			}
			fmt.Printf("Pattern:         %s\n", record.Pattern)
			fmt.Printf("Production:      %s\n", cli.FormatDate(*record.Production, format))
			fmt.Printf("Expiry:          %s\n", cli.FormatDate(*record.Expiry, format))
			fmt.Printf("Confidence:      %d%% (%s)\n", record.Confidence, record.Tier)
			fmt.Printf("Interpretations: %d\n", record.Interpretations)
			return nil
		},
	}
}

func historyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all analysis history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			deleted, err := db.ClearHistory(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("Deleted %d records\n", deleted)
			return nil
		},
	}
}
