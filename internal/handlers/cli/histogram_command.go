package cli

import (
	"github.com/spf13/cobra"
)

// newHistogramCommand creates the 'histogram' subcommand.
func newHistogramCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "histogram",
		Short: "Draw a text histogram of item counts.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := loadStore(cmd, a)
			printHistogram(cmd.OutOrStdout(), result.Store.RenderHistogram())
			return nil
		},
	}
}
