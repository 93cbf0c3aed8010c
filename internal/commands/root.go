package commands

import (
	"log/slog"
	"os"

	"handwerk/internal/config"
	"handwerk/internal/store"

	"github.com/spf13/cobra"
)

var globalConfig *config.Config

var (
	dataFileFlag string
	verboseFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "handwerk",
	Short: "Werkzeug für Handwerksbetriebe",
	Long: `Handwerk ist ein Kommandozeilen-Werkzeug für Handwerksbetriebe.
Es verwaltet Projekte mit Aufgaben und Materialbedarf sowie den
Lagerbestand in einer einzelnen JSON-Datei.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verboseFlag {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

// Execute runs the root command
func Execute(cfg *config.Config) error {
	globalConfig = cfg
	return rootCmd.Execute()
}

// openStore resolves the data file path and returns a store bound to it
func openStore() *store.Store {
	path := globalConfig.DataFilePath(dataFileFlag)
	slog.Debug("resolved data file", "path", path)
	return store.New(path)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFileFlag, "data-file", "", "Pfad der JSON-Datendatei")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Debug-Ausgaben aktivieren")
}
