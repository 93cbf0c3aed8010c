package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	require.Empty(t, cfg.DataFile)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := &Config{DataFile: "/tmp/projekte.json"}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.DataFile, loaded.DataFile)
}

func TestConfig_DataFilePath(t *testing.T) {
	var cfg *Config
	require.Equal(t, DefaultDataFile, cfg.DataFilePath(""))

	cfg = &Config{}
	require.Equal(t, DefaultDataFile, cfg.DataFilePath(""))

	cfg.DataFile = "projekte.json"
	require.Equal(t, "projekte.json", cfg.DataFilePath(""))

	// The flag override always wins
	require.Equal(t, "anders.json", cfg.DataFilePath("anders.json"))
}

func TestGlobalConfigPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := GetGlobalConfigPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(os.Getenv("HOME"), ".handwerk", "config.json"), path)
}

func TestGlobalConfig_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadGlobalConfig()
	require.NoError(t, err)
	require.Empty(t, cfg.DataFile)

	cfg.DataFile = "projekte.json"
	require.NoError(t, SaveGlobalConfig(cfg))

	loaded, err := LoadGlobalConfig()
	require.NoError(t, err)
	require.Equal(t, "projekte.json", loaded.DataFile)
}
