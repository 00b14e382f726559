package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/grocerytracker/internal/adapters/yamlconfig"
	"github.com/AntonioJCosta/grocerytracker/internal/core/ports"
	"github.com/AntonioJCosta/grocerytracker/internal/core/services/frequencytracking"
	"github.com/AntonioJCosta/grocerytracker/internal/handlers/cli"
	"github.com/AntonioJCosta/grocerytracker/internal/repositories/itemfile"
	"github.com/rs/zerolog"
)

// Version is set at build time
var Version = "dev"

func main() {
	deps := cli.Dependencies{
		NewConfigProvider:  yamlconfig.NewYAMLProvider,
		NewTrackingService: newTrackingService,
	}
	rootCmd := cli.NewRootCommand(Version, deps)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newTrackingService(settings ports.Settings, logger zerolog.Logger) (ports.FrequencyTrackingService, error) {
	itemSource, err := itemfile.NewFileItemSource(settings.InputFile)
	if err != nil {
		return nil, fmt.Errorf("initializing item source: %w", err)
	}
	backupDest, err := itemfile.NewFileBackupDestination(settings.BackupFile)
	if err != nil {
		return nil, fmt.Errorf("initializing backup destination: %w", err)
	}
	return frequencytracking.NewService(itemSource, backupDest, logger), nil
}
