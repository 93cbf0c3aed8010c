package components

import (
	"fmt"

	"handwerk/internal/models"
	"handwerk/internal/util"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProjectItem represents a project item in the list
type ProjectItem struct {
	Project *models.Project
}

// FilterValue returns the filter value for the project item
func (i ProjectItem) FilterValue() string {
	return i.Project.Name
}

// Title returns the title for the project item
func (i ProjectItem) Title() string {
	return fmt.Sprintf("#%d %s", i.Project.ID, i.Project.Name)
}

// Description returns the description for the project item
func (i ProjectItem) Description() string {
	return fmt.Sprintf("%s | %s | %s", i.Project.Customer, i.Project.Status, util.OrDash(i.Project.DueDate))
}

// ProjectListModel represents the project list model
type ProjectListModel struct {
	List     list.Model
	Projects []*models.Project
	Selected *models.Project
}

// NewProjectListModel creates a new project list model
func NewProjectListModel(width, height int) ProjectListModel {
	listModel := list.New([]list.Item{}, list.NewDefaultDelegate(), width, height)
	listModel.Title = "Projekte"
	listModel.SetShowStatusBar(false)
	listModel.SetFilteringEnabled(true)
	listModel.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true).
		MarginLeft(2)

	return ProjectListModel{
		List: listModel,
	}
}

// SetProjects sets the projects in the list, keeping document order
func (m *ProjectListModel) SetProjects(projects []*models.Project) {
	m.Projects = projects

	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = ProjectItem{Project: p}
	}
	m.List.SetItems(items)

	if item, ok := m.List.SelectedItem().(ProjectItem); ok {
		m.Selected = item.Project
	} else {
		m.Selected = nil
	}
}

// SetSize resizes the underlying list
func (m *ProjectListModel) SetSize(width, height int) {
	m.List.SetSize(width, height)
}

// SettingFilter reports whether the list is currently reading filter input
func (m ProjectListModel) SettingFilter() bool {
	return m.List.SettingFilter()
}

// Update handles project list updates
func (m ProjectListModel) Update(msg tea.Msg) (ProjectListModel, tea.Cmd) {
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)

	// Update selected project
	if item, ok := m.List.SelectedItem().(ProjectItem); ok {
		m.Selected = item.Project
	} else {
		m.Selected = nil
	}

	return m, cmd
}

// View renders the project list
func (m ProjectListModel) View() string {
	return m.List.View()
}
