package cli

import (
	"fmt"

	"github.com/AntonioJCosta/grocerytracker/internal/core/ports"
	"github.com/AntonioJCosta/grocerytracker/internal/core/services/frequencystore"
	"github.com/AntonioJCosta/grocerytracker/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// loadStore loads the configured input. A load failure is reported on stderr and the
// returned store holds whatever could be read, possibly nothing.
func loadStore(cmd *cobra.Command, a *app) ports.LoadResult {
	result, err := a.tracking.LoadItems()
	if result.Store == nil {
		result.Store = frequencystore.New()
	}
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningColor(fmt.Sprintf("Continuing with %d item(s).", result.Store.Len())))
	}
	return result
}

// backupStore writes the backup, reporting any failure on stderr.
func backupStore(cmd *cobra.Command, a *app, store ports.FrequencyStore) (string, error) {
	destination, err := a.tracking.Backup(store)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		return destination, err
	}
	return destination, nil
}

// runInteractive performs the startup load and backup, then hands over to the menu.
func runInteractive(cmd *cobra.Command, a *app) error {
	result := loadStore(cmd, a)
	// A failed backup has already been reported; the menu still works without it.
	_, _ = backupStore(cmd, a, result.Store)

	m := newMenu(result.Store, cmd.InOrStdin(), cmd.OutOrStdout(), a.logger)
	return m.Run()
}
