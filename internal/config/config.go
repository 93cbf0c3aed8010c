package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultDataFile is the data file used when neither the --data-file
// flag nor the configuration names one. It is resolved relative to the
// working directory.
const DefaultDataFile = "handwerk_data.json"

// Config represents the application configuration
type Config struct {
	// Path of the JSON data file. Empty means DefaultDataFile in the
	// current working directory.
	DataFile string `json:"data_file,omitempty"`
}

// Load loads the configuration from the given file path. A missing
// file yields default settings.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save saves the configuration to the given file path
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DataFilePath resolves the data file path. An explicit override (the
// --data-file flag) wins, then the configured data_file, then
// DefaultDataFile.
func (c *Config) DataFilePath(override string) string {
	if override != "" {
		return override
	}
	if c != nil && c.DataFile != "" {
		return c.DataFile
	}
	return DefaultDataFile
}

// GetGlobalConfigDir returns the directory holding the user-level
// configuration file
func GetGlobalConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".handwerk"), nil
}

// GetGlobalConfigPath returns the path of the user-level configuration file
func GetGlobalConfigPath() (string, error) {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadGlobalConfig loads the user-level configuration, returning
// defaults when the file does not exist
func LoadGlobalConfig() (*Config, error) {
	path, err := GetGlobalConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// SaveGlobalConfig saves the user-level configuration
func SaveGlobalConfig(cfg *Config) error {
	path, err := GetGlobalConfigPath()
	if err != nil {
		return err
	}
	return cfg.Save(path)
}
