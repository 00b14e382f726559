package cli

import (
	"fmt"

	"github.com/AntonioJCosta/grocerytracker/internal/adapters/logging"
	"github.com/AntonioJCosta/grocerytracker/internal/core/ports"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Dependencies holds the constructors the commands need once flags are parsed.
type Dependencies struct {
	NewConfigProvider  func(configPath string) ports.ConfigProvider
	NewTrackingService func(settings ports.Settings, logger zerolog.Logger) (ports.FrequencyTrackingService, error)
}

type settingsFlags struct {
	configPath string
	inputFile  string
	backupFile string
	logLevel   string
}

// app is the state shared by the root command and its subcommands after initialization.
type app struct {
	deps     Dependencies
	flags    settingsFlags
	settings ports.Settings
	logger   zerolog.Logger
	tracking ports.FrequencyTrackingService
}

func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	a := &app{deps: deps, logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "grocerytracker",
		Short: "grocerytracker counts how often each grocery item was purchased.",
		Long: `grocerytracker reads a list of grocery items (one per line), counts each
distinct item, writes a backup of the counts and opens an interactive menu
to query single items, list all counts or draw a histogram.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, a)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "Path to a YAML config file (default ./grocerytracker.yaml, then ~/.grocerytracker/config.yaml).")
	pf.StringVarP(&a.flags.inputFile, "input", "i", "", "Input file with one item per line (overrides config).")
	pf.StringVarP(&a.flags.backupFile, "backup", "b", "", "Backup file for the item counts (overrides config).")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config).")

	rootCmd.AddCommand(newQueryCommand(a))
	rootCmd.AddCommand(newListCommand(a))
	rootCmd.AddCommand(newHistogramCommand(a))
	rootCmd.AddCommand(newBackupCommand(a))

	return rootCmd
}

// initialize resolves settings, builds the logger and the tracking service.
func (a *app) initialize(cmd *cobra.Command) error {
	if a.deps.NewConfigProvider == nil || a.deps.NewTrackingService == nil {
		return fmt.Errorf("dependencies not initialized for command %s", cmd.Name())
	}

	provider := a.deps.NewConfigProvider(a.flags.configPath)
	settings, err := provider.Load()
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}
	a.settings = applyFlagOverrides(settings, a.flags)

	level, err := logging.ParseLevel(a.settings.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logging.NewConsole(cmd.ErrOrStderr(), level, color.NoColor)
	a.logger.Debug().
		Str("config", provider.GetConfigSource()).
		Str("input", a.settings.InputFile).
		Str("backup", a.settings.BackupFile).
		Msg("configuration resolved")

	a.tracking, err = a.deps.NewTrackingService(a.settings, a.logger)
	if err != nil {
		return fmt.Errorf("could not initialize frequency tracking: %w", err)
	}
	return nil
}

func applyFlagOverrides(settings ports.Settings, flags settingsFlags) ports.Settings {
	if flags.inputFile != "" {
		settings.InputFile = flags.inputFile
	}
	if flags.backupFile != "" {
		settings.BackupFile = flags.backupFile
	}
	if flags.logLevel != "" {
		settings.LogLevel = flags.logLevel
	}
	return settings
}
