package commands

import (
	"path/filepath"

	"handwerk/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Projekte interaktiv durchsehen",
	Long: `Öffnet eine Vollbild-Ansicht über Projekte und Lagerbestand.
Die Ansicht lädt automatisch neu, wenn sich die Datendatei ändert.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStore()

		// Surface unreadable data before entering the alternate screen
		if _, err := st.Load(); err != nil {
			return err
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		// Watch the directory: saves replace the file via rename, which
		// would detach a watch on the file itself
		if err := watcher.Add(filepath.Dir(st.Path())); err != nil {
			return err
		}

		model := ui.NewModel(st, watcher)
		p := tea.NewProgram(model, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
