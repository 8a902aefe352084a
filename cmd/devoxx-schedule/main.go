package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/devoxx-schedule/internal/config"
	"github.com/javiermolinar/devoxx-schedule/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	return ui.NewApp(cfg).Execute()
}
