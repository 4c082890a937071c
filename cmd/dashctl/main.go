// Command dashctl runs the dashboard pipeline over a saved backend payload:
// it prints normalized rows, options or series, and renders or exports them.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dashctl",
		Short: "Run the dashboard pipeline over a JSON payload",
		Long: `dashctl reads a backend response saved to a file (or "-" for stdin)
and runs it through the same normalization and aggregation the service uses.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")

	root.AddCommand(
		newRowsCmd(),
		newOptionsCmd(),
		newAggregateCmd(),
		newRenderCmd(),
		newExportCmd(),
	)
	return root
}
