package main

import (
	"fmt"
	"os"

	"handwerk/internal/commands"
	"handwerk/internal/config"
)

func main() {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		// Continue with defaults; the file is recreated on demand
		cfg = &config.Config{}
	}

	if err := commands.Execute(cfg); err != nil {
		os.Exit(1)
	}
}
