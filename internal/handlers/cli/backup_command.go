package cli

import (
	"fmt"

	"github.com/AntonioJCosta/grocerytracker/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// newBackupCommand creates the 'backup' subcommand.
func newBackupCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write the item counts to the backup file and exit.",
		Long: `Loads the input file and writes one "<item> <count>" line per item to the
backup file, replacing its previous content.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackupCmd(cmd, args, a)
		},
	}
	return cmd
}

func runBackupCmd(cmd *cobra.Command, _ []string, a *app) error {
	result := loadStore(cmd, a)
	destination, err := backupStore(cmd, a, result.Store)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(fmt.Sprintf("%d item(s) written to %s.", result.Store.Len(), destination)))
	return nil
}
