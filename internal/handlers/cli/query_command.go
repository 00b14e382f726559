package cli

import (
	"github.com/spf13/cobra"
)

// newQueryCommand creates the 'query' subcommand.
func newQueryCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query ITEM",
		Short: "Show how many times a single item was purchased.",
		Long: `Loads the input file and prints the count for ITEM.
The name must match exactly, including case and surrounding spaces.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryCmd(cmd, args, a)
		},
	}
	return cmd
}

func runQueryCmd(cmd *cobra.Command, args []string, a *app) error {
	result := loadStore(cmd, a)
	printQueryResult(cmd.OutOrStdout(), args[0], result.Store.GetFrequency(args[0]))
	return nil
}
