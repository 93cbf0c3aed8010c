package commands

import (
	"fmt"
	"os"

	"handwerk/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Konfiguration verwalten",
	Long:  "Benutzer-Konfiguration anzeigen und ändern",
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Konfigurationswerte anzeigen",
	Long:  "Zeigt einen einzelnen Konfigurationswert oder die gesamte Konfiguration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// If no argument is provided, show all config
		if len(args) == 0 {
			fmt.Println("Aktuelle Konfiguration:")
			if cfg.DataFile != "" {
				fmt.Printf("data_file: %s\n", cfg.DataFile)
			} else {
				fmt.Printf("data_file: %s (Standard)\n", config.DefaultDataFile)
			}
			return nil
		}

		switch args[0] {
		case "data_file":
			fmt.Println(cfg.DataFilePath(""))
		default:
			return fmt.Errorf("unknown configuration key: %s", args[0])
		}

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Konfigurationswert setzen",
	Long:  "Setzt einen Konfigurationswert, z.B. den Pfad der Datendatei",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		switch args[0] {
		case "data_file":
			cfg.DataFile = args[1]
		default:
			return fmt.Errorf("unknown configuration key: %s", args[0])
		}

		if err := config.SaveGlobalConfig(cfg); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}

		fmt.Printf("%s gesetzt auf %s\n", args[0], args[1])
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Konfiguration anlegen",
	Long:  "Legt eine neue Konfigurationsdatei mit Standardwerten an",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.GetGlobalConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}

		if _, err := os.Stat(configPath); err == nil {
			fmt.Println("Konfigurationsdatei existiert bereits.")
			fmt.Println("Werte lassen sich mit 'handwerk config set' ändern.")
			return nil
		}

		cfg := &config.Config{}
		if err := config.SaveGlobalConfig(cfg); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}

		fmt.Printf("Konfigurationsdatei angelegt: %s\n", configPath)
		return nil
	},
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Konfigurationspfade anzeigen",
	Long:  "Zeigt die Pfade von Konfigurations- und Datendatei",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := config.GetGlobalConfigDir()
		if err != nil {
			return err
		}
		configPath, err := config.GetGlobalConfigPath()
		if err != nil {
			return err
		}

		cfg, err := config.LoadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		fmt.Printf("Konfigurationsverzeichnis: %s\n", configDir)
		fmt.Printf("Konfigurationsdatei: %s\n", configPath)
		fmt.Printf("Datendatei: %s\n", cfg.DataFilePath(dataFileFlag))

		fmt.Println()
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			fmt.Println("Konfigurationsdatei: nicht vorhanden")
		} else {
			fmt.Println("Konfigurationsdatei: vorhanden")
		}
		if _, err := os.Stat(cfg.DataFilePath(dataFileFlag)); os.IsNotExist(err) {
			fmt.Println("Datendatei: nicht vorhanden")
		} else {
			fmt.Println("Datendatei: vorhanden")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathsCmd)
}
