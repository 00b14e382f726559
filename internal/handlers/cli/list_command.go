package cli

import (
	"fmt"

	"github.com/AntonioJCosta/grocerytracker/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// newListCommand creates the 'list' subcommand.
func newListCommand(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every item with its count.",
		Long:  `Loads the input file and prints all items with their counts, sorted by item name.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, a, plain)
		},
	}

	cmd.Flags().BoolVarP(&plain, "plain", "p", false, "Print \"<item> <count>\" lines instead of a table.")

	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(cmd *cobra.Command, _ []string, a *app, plain bool) error {
	result := loadStore(cmd, a)
	frequencies := result.Store.AllFrequencies()
	out := cmd.OutOrStdout()

	if plain {
		printFrequencyList(out, frequencies)
		return nil
	}

	if len(frequencies) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No items were loaded."))
		if result.SourceDetails != "" {
			fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Context: %s", result.SourceDetails)))
		}
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor("Item Frequencies:"))
	printFrequencyTable(out, frequencies)
	if result.SourceDetails != "" {
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(Source: %s)", result.SourceDetails)))
	}
	return nil
}
