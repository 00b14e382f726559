package ports

// Settings holds the resolved runtime configuration.
type Settings struct {
	InputFile  string `yaml:"input_file"`
	BackupFile string `yaml:"backup_file"`
	LogLevel   string `yaml:"log_level"`
}

// ConfigProvider defines the contract for loading settings from a configuration source.
type ConfigProvider interface {
	// Load returns the settings, with defaults applied for anything left unset.
	Load() (Settings, error)
	GetConfigSource() string
}
