package commands

import (
	"os"
	"path/filepath"
	"testing"

	"handwerk/internal/store"

	"github.com/stretchr/testify/require"
)

func TestMaterialAdd_ToInventory(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "handwerk_data.json")

	out := runCLI(t, dataFile, "material", "add", "Schrauben", "2.5", "--unit", "kg")
	require.Equal(t, "Material hinzugefügt zu Lagerbestand: 2.5 kg Schrauben\n", out)

	doc, err := store.New(dataFile).Load()
	require.NoError(t, err)
	require.Len(t, doc.Inventory, 1)
	require.Equal(t, "Schrauben", doc.Inventory[0].Name)
	require.Equal(t, 2.5, doc.Inventory[0].Quantity)
	require.Equal(t, "kg", doc.Inventory[0].Unit)
}

func TestMaterialAdd_DefaultUnit(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "handwerk_data.json")

	out := runCLI(t, dataFile, "material", "add", "Dübel", "200")
	require.Equal(t, "Material hinzugefügt zu Lagerbestand: 200 Stk Dübel\n", out)
}

func TestMaterialAdd_ToProject(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "handwerk_data.json")

	runCLI(t, dataFile, "project", "add", "Dach", "Müller")

	out := runCLI(t, dataFile, "material", "add", "Dachziegel", "500", "--project-id", "1")
	require.Equal(t, "Material hinzugefügt zu Projekt 1: 500 Stk Dachziegel\n", out)

	doc, err := store.New(dataFile).Load()
	require.NoError(t, err)
	require.Len(t, doc.Projects[0].Materials, 1)
	require.Empty(t, doc.Inventory)
}

func TestMaterialAdd_ZeroProjectIDGoesToInventory(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "handwerk_data.json")

	runCLI(t, dataFile, "project", "add", "Dach", "Müller")

	out := runCLI(t, dataFile, "material", "add", "Schrauben", "200", "--project-id", "0")
	require.Contains(t, out, "Lagerbestand")

	doc, err := store.New(dataFile).Load()
	require.NoError(t, err)
	require.Len(t, doc.Inventory, 1)
	require.Empty(t, doc.Projects[0].Materials)
}

func TestMaterialAdd_UnknownProjectLeavesFileUnchanged(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "handwerk_data.json")

	runCLI(t, dataFile, "project", "add", "Dach", "Müller")
	before, err := os.ReadFile(dataFile)
	require.NoError(t, err)

	out := runCLI(t, dataFile, "material", "add", "Dachziegel", "500", "--project-id", "99")
	require.Equal(t, "Projekt 99 nicht gefunden.\n", out)

	after, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestMaterialAdd_InvalidQuantity(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "handwerk_data.json")

	_, err := runCLIErr(t, dataFile, "material", "add", "Schrauben", "viele")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid quantity")
}

func TestMaterialAdd_NegativeQuantity(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "handwerk_data.json")

	// A leading dash needs the flag terminator
	out := runCLI(t, dataFile, "material", "add", "--", "Verschnitt", "-3.5")
	require.Equal(t, "Material hinzugefügt zu Lagerbestand: -3.5 Stk Verschnitt\n", out)

	doc, err := store.New(dataFile).Load()
	require.NoError(t, err)
	require.Equal(t, -3.5, doc.Inventory[0].Quantity)
}
