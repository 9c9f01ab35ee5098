package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DylanJ17/batchcode/internal/pattern"
)

func patternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the supported batch code formats",
		Long: `List every format in the decoding catalog with its structural shape,
base confidence, and example codes. The catalog is fixed; patterns are tried
exhaustively against every analyzed code.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			registry := pattern.NewRegistry()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tSHAPE\tBASE\tPRIORITY\tEXAMPLES")
			_, _ = fmt.Fprintln(w, "────\t─────\t────\t────────\t────────")

			for _, spec := range registry.Specs() {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%d%%\t%d\t%s\n",
					spec.Name,
					spec.ShapeString(),
					spec.BaseConfidence,
					spec.Priority,
					strings.Join(spec.Examples, ", "))
			}

			return w.Flush()
		},
	}
}
