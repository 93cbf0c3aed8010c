package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"handwerk/internal/models"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExport_JSON(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "handwerk_data.json")

	runCLI(t, dataFile, "project", "add", "Dach", "Müller & Söhne")

	out := runCLI(t, dataFile, "export")

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Contains(t, result, "projects")
	require.Contains(t, result, "inventory")

	// HTML escaping stays off, as in the data file itself
	require.Contains(t, out, "Müller & Söhne")
}

func TestExport_YAML(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "handwerk_data.json")

	runCLI(t, dataFile, "project", "add", "Dach", "Müller")

	out := runCLI(t, dataFile, "export", "--format", "yaml")

	var doc models.Document
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Projects, 1)
	require.Equal(t, "Dach", doc.Projects[0].Name)
}

func TestExport_ToFile(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "handwerk_data.json")
	outFile := filepath.Join(t.TempDir(), "export.json")

	runCLI(t, dataFile, "project", "add", "Dach", "Müller")

	out := runCLI(t, dataFile, "export", "--output", outFile)
	require.Empty(t, out)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "\"projects\"")
}

func TestExport_UnknownFormat(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "handwerk_data.json")

	_, err := runCLIErr(t, dataFile, "export", "--format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown format")
}
