package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocument_NextProjectID(t *testing.T) {
	doc := NewDocument()
	require.Equal(t, 1, doc.NextProjectID())

	doc.AddProject(NewProject(1, "Dach", "Müller"))
	require.Equal(t, 2, doc.NextProjectID())

	// Gaps are not refilled; the id is always one above the maximum
	doc.AddProject(NewProject(7, "Garage", "Schmidt"))
	require.Equal(t, 8, doc.NextProjectID())
}

func TestDocument_FindProject(t *testing.T) {
	doc := NewDocument()
	doc.AddProject(NewProject(1, "Dach", "Müller"))
	doc.AddProject(NewProject(2, "Garage", "Schmidt"))

	p, err := doc.FindProject(2)
	require.NoError(t, err)
	require.Equal(t, "Garage", p.Name)

	_, err = doc.FindProject(99)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestDocument_FindProjectReturnsPointerIntoDocument(t *testing.T) {
	doc := NewDocument()
	doc.AddProject(NewProject(1, "Dach", "Müller"))

	p, err := doc.FindProject(1)
	require.NoError(t, err)

	p.Tasks = append(p.Tasks, NewTask("Ziegel bestellen"))
	require.Len(t, doc.Projects[0].Tasks, 1)
}

func TestDocument_FindProjectDuplicateIDs(t *testing.T) {
	// Externally edited files may carry duplicate ids; the first match wins
	doc := NewDocument()
	doc.AddProject(NewProject(1, "Erstes", "Müller"))
	doc.AddProject(NewProject(1, "Zweites", "Schmidt"))

	p, err := doc.FindProject(1)
	require.NoError(t, err)
	require.Equal(t, "Erstes", p.Name)
}

func TestDocument_Normalize(t *testing.T) {
	empty := ""
	doc := &Document{
		Projects: []Project{
			{ID: 1, Name: "Dach", Customer: "Müller", Address: &empty},
		},
	}

	doc.Normalize()

	require.NotNil(t, doc.Inventory)
	p := doc.Projects[0]
	require.Equal(t, StatusOffen, p.Status)
	require.Nil(t, p.Address)
	require.NotNil(t, p.Tasks)
	require.NotNil(t, p.Materials)
}

func TestDocument_NormalizeNested(t *testing.T) {
	doc := &Document{
		Projects: []Project{
			{
				ID:        1,
				Name:      "Dach",
				Customer:  "Müller",
				Tasks:     []Task{{Title: "Ziegel bestellen"}},
				Materials: []Material{{Name: "Ziegel", Quantity: 500}},
			},
		},
		Inventory: []Material{{Name: "Schrauben", Quantity: 200}},
	}

	doc.Normalize()

	require.Equal(t, StatusOffen, doc.Projects[0].Tasks[0].Status)
	require.Equal(t, DefaultUnit, doc.Projects[0].Materials[0].Unit)
	require.Equal(t, DefaultUnit, doc.Inventory[0].Unit)
}

func TestNewProject_Defaults(t *testing.T) {
	p := NewProject(3, "Dach", "Müller")

	require.Equal(t, 3, p.ID)
	require.Equal(t, StatusOffen, p.Status)
	require.Nil(t, p.Address)
	require.Nil(t, p.DueDate)
	require.Nil(t, p.Notes)
	require.Empty(t, p.Tasks)
	require.Empty(t, p.Materials)
}

func TestNewMaterial_DefaultUnit(t *testing.T) {
	m := NewMaterial("Ziegel", 500, "")
	require.Equal(t, DefaultUnit, m.Unit)

	m = NewMaterial("Kabel", 25, "m")
	require.Equal(t, "m", m.Unit)
}
