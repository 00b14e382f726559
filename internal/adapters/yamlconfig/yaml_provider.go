package yamlconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/grocerytracker/internal/core/ports"
	"gopkg.in/yaml.v3"
)

const (
	localConfigFileName   = "grocerytracker.yaml"
	defaultConfigDirName  = ".grocerytracker"
	defaultConfigFileName = "config.yaml"
)

// Defaults used when neither a config file nor a flag sets a value.
const (
	DefaultInputFile  = "CS210_Project_Three_Input_File.txt"
	DefaultBackupFile = "frequency.dat"
	DefaultLogLevel   = "warn"
)

// YAMLProvider implements the ConfigProvider interface by reading settings from a YAML file.
type YAMLProvider struct {
	explicitPath string
	searchPaths  []string
	loadedFrom   string
}

/*
NewYAMLProvider creates a new YAMLProvider.
If explicitPath is set it must exist. Otherwise ./grocerytracker.yaml and then
~/.grocerytracker/config.yaml are tried, falling back to built-in defaults.
*/
func NewYAMLProvider(explicitPath string) ports.ConfigProvider {
	searchPaths := []string{localConfigFileName}
	if homeDir, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(homeDir, defaultConfigDirName, defaultConfigFileName))
	}
	return &YAMLProvider{explicitPath: explicitPath, searchPaths: searchPaths}
}

// Load implements the ports.ConfigProvider interface.
func (p *YAMLProvider) Load() (ports.Settings, error) {
	if p.explicitPath != "" {
		settings, err := loadFromFile(p.explicitPath)
		if err != nil {
			return ports.Settings{}, err
		}
		p.loadedFrom = p.explicitPath
		return settings, nil
	}

	for _, path := range p.searchPaths {
		settings, err := loadFromFile(path)
		if err == nil {
			p.loadedFrom = path
			return settings, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return ports.Settings{}, err
		}
	}

	p.loadedFrom = ""
	return applyDefaults(ports.Settings{}), nil
}

// GetConfigSource implements the ports.ConfigProvider interface.
func (p *YAMLProvider) GetConfigSource() string {
	if p.loadedFrom == "" {
		return "built-in defaults"
	}
	return p.loadedFrom
}

func loadFromFile(path string) (ports.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ports.Settings{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var settings ports.Settings
	if len(data) == 0 {
		return applyDefaults(settings), nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&settings); err != nil {
		// A file holding only comments or "---" has no document.
		if errors.Is(err, io.EOF) {
			return applyDefaults(settings), nil
		}
		return ports.Settings{}, fmt.Errorf("failed to unmarshal config from %s: %w", path, err)
	}
	return applyDefaults(settings), nil
}

// applyDefaults fills every unset field.
func applyDefaults(settings ports.Settings) ports.Settings {
	if settings.InputFile == "" {
		settings.InputFile = DefaultInputFile
	}
	if settings.BackupFile == "" {
		settings.BackupFile = DefaultBackupFile
	}
	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}
	return settings
}
