package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"handwerk/internal/models"
	"handwerk/internal/store"
	"handwerk/internal/ui/components"
	"handwerk/internal/util"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
)

// Model represents the UI model
type Model struct {
	List          components.ProjectListModel
	Viewport      viewport.Model
	Spinner       spinner.Model
	IsLoading     bool
	StatusMessage string
	ErrorMessage  string
	Store         *store.Store
	Document      *models.Document
	Watcher       *fsnotify.Watcher
	Width         int
	Height        int
	Ready         bool
}

// NewModel creates a new UI model
func NewModel(st *store.Store, watcher *fsnotify.Watcher) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		Spinner:       s,
		IsLoading:     true,
		StatusMessage: "Lade Daten...",
		Store:         st,
		Watcher:       watcher,
		List:          components.NewProjectListModel(0, 0),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, loadDocument(m.Store), watchFile(m.Watcher, m.Store.Path()))
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While the list reads filter input, every key belongs to it
		if m.List.SettingFilter() {
			m.List, cmd = m.List.Update(msg)
			m.syncViewport()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.IsLoading = true
			m.StatusMessage = "Lade neu..."
			return m, loadDocument(m.Store)
		case "pgup", "pgdown":
			m.Viewport, cmd = m.Viewport.Update(msg)
			return m, cmd
		default:
			m.List, cmd = m.List.Update(msg)
			m.syncViewport()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		listWidth := msg.Width / 3
		contentHeight := msg.Height - 6

		if !m.Ready {
			// First time initializing
			m.Viewport = viewport.New(msg.Width-listWidth, contentHeight)
			m.Viewport.YPosition = 3
			m.Ready = true
		} else {
			m.Viewport.Width = msg.Width - listWidth
			m.Viewport.Height = contentHeight
		}
		m.List.SetSize(listWidth, contentHeight)
		m.syncViewport()

		return m, nil

	case spinner.TickMsg:
		var spinnerCmd tea.Cmd
		m.Spinner, spinnerCmd = m.Spinner.Update(msg)
		cmds = append(cmds, spinnerCmd)

	case documentLoadedMsg:
		doc := (*models.Document)(msg)
		m.IsLoading = false
		m.ErrorMessage = ""
		m.Document = doc
		m.StatusMessage = fmt.Sprintf("%d Projekte geladen", len(doc.Projects))

		projects := make([]*models.Project, len(doc.Projects))
		for i := range doc.Projects {
			projects[i] = &doc.Projects[i]
		}
		m.List.SetProjects(projects)
		m.syncViewport()
		return m, nil

	case fileChangedMsg:
		m.IsLoading = true
		m.StatusMessage = "Datendatei geändert, lade neu..."
		return m, tea.Batch(loadDocument(m.Store), watchFile(m.Watcher, m.Store.Path()))

	case errorMsg:
		m.IsLoading = false
		m.ErrorMessage = string(msg)
		m.StatusMessage = "Fehler"
		return m, nil
	}

	if m.Ready {
		var viewportCmd tea.Cmd
		m.Viewport, viewportCmd = m.Viewport.Update(msg)
		cmds = append(cmds, viewportCmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Initialisiere..."
	}

	var status string
	if m.IsLoading {
		status = fmt.Sprintf("%s %s", m.Spinner.View(), m.StatusMessage)
	} else {
		status = m.StatusMessage
	}

	statusBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1).
		Render(status)

	titleBar := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		Padding(0, 1).
		Render(fmt.Sprintf("Handwerk - %s", filepath.Base(m.Store.Path())))

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1).
		Render("q beenden, r neu laden, / filtern, PgUp/PgDn blättern")

	errorView := ""
	if m.ErrorMessage != "" {
		errorView = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Padding(0, 1).
			Render(m.ErrorMessage)
	}

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.List.View(),
		m.Viewport.View(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		statusBar,
		content,
		errorView,
		help,
	)
}

// syncViewport mirrors the current list selection into the detail pane
func (m *Model) syncViewport() {
	if !m.Ready {
		return
	}
	if m.List.Selected == nil {
		m.Viewport.SetContent(m.emptyContent())
		return
	}
	m.Viewport.SetContent(renderProject(m.List.Selected))
}

func (m *Model) emptyContent() string {
	if m.Document == nil {
		return ""
	}
	content := "Keine Projekte erfasst.\n"
	if len(m.Document.Inventory) > 0 {
		content += fmt.Sprintf("\nLagerbestand: %d Posten\n", len(m.Document.Inventory))
	}
	return content
}

// Messages
type documentLoadedMsg *models.Document
type fileChangedMsg struct{}
type errorMsg string

// Commands
func loadDocument(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		doc, err := st.Load()
		if err != nil {
			return errorMsg(fmt.Sprintf("Fehler beim Laden: %v", err))
		}
		return documentLoadedMsg(doc)
	}
}

// watchFile waits for the next change of the data file. The command is
// re-issued after every received event, as bubbletea consumes one
// message per command.
func watchFile(watcher *fsnotify.Watcher, path string) tea.Cmd {
	if watcher == nil {
		return nil
	}
	base := filepath.Base(path)
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					return fileChangedMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return errorMsg(fmt.Sprintf("Dateiüberwachung fehlgeschlagen: %v", err))
			}
		}
	}
}

// Helper functions
func renderProject(p *models.Project) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		Render(fmt.Sprintf("Projekt %d: %s", p.ID, p.Name))

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(fmt.Sprintf("Kunde: %s\n", p.Customer))
	if p.Address != nil {
		b.WriteString(fmt.Sprintf("Adresse: %s\n", *p.Address))
	}
	if p.DueDate != nil {
		b.WriteString(fmt.Sprintf("Fällig am: %s\n", *p.DueDate))
	}
	b.WriteString(fmt.Sprintf("Status: %s\n", p.Status))
	if p.Notes != nil {
		b.WriteString(fmt.Sprintf("Notizen: %s\n", *p.Notes))
	}

	sectionStyle := lipgloss.NewStyle().Bold(true)

	if len(p.Tasks) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Aufgaben:") + "\n")
		for i, t := range p.Tasks {
			b.WriteString(fmt.Sprintf(" %2d. [%s] %s (bis %s)\n", i+1, t.Status, t.Title, util.OrDash(t.DueDate)))
		}
	} else {
		b.WriteString("\nKeine Aufgaben erfasst.\n")
	}

	if len(p.Materials) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Materialbedarf:") + "\n")
		for _, m := range p.Materials {
			b.WriteString(fmt.Sprintf(" - %s (%s %s)\n", m.Name, util.FormatQuantity(m.Quantity), m.Unit))
		}
	} else {
		b.WriteString("\nKein Material hinterlegt.\n")
	}

	return b.String()
}
