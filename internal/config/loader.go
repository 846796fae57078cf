package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".weaponstats"

// GlobalConfigName is the file name inside the XDG config directory.
const GlobalConfigName = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the content of a .weaponstats YAML file.
// Every field is optional; CLI flags override the values set here.
type File struct {
	// Data is the default data file path.
	Data string `yaml:"data"`

	// Delimiter is a single character, or `\t` for tabs.
	Delimiter string `yaml:"delimiter"`

	// Limit is the N of every top-N section.
	Limit int `yaml:"limit"`

	// Engine is "memory" or "sqlite".
	Engine string `yaml:"engine"`

	// Format is "text", "json" or "markdown".
	Format string `yaml:"format"`

	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`
}

// LoadConfigFile loads a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// GlobalConfigFile returns the per-user configuration file path.
func GlobalConfigFile() string {
	return filepath.Join(XDGConfigDir(), GlobalConfigName)
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .weaponstats in the current directory
// 3. Look for .weaponstats in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, GlobalConfigFile())

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
