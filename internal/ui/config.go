package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/devoxx-schedule/internal/config"
	"github.com/javiermolinar/devoxx-schedule/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays the current config. Pass --edit to change it.

Example:
  devoxx-schedule config --edit`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runConfig(config.DefaultConfigPath(), edit, os.Stdin)
		},
	}

	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Prompt for new values")
	return cmd
}

func (a *App) runConfig(configPath string, edit bool, in io.Reader) error {
	_, _ = fmt.Fprintf(a.out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		_, _ = fmt.Fprintln(a.out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		_, _ = fmt.Fprintf(a.out, "Created %s\n\n", configPath)
	}

	a.printConfig(cfg)

	if !edit {
		return nil
	}

	reader := bufio.NewReader(in)
	_, _ = fmt.Fprintln(a.out)

	cfg.Source.BaseURL = a.promptValue(reader, "API base URL", cfg.Source.BaseURL)
	cfg.Source.DataDir = a.promptValue(reader, "Offline data directory", cfg.Source.DataDir)
	cfg.Source.Format = a.promptValue(reader, "Offline format (structured/line)", cfg.Source.Format)
	cfg.Storage.DBPath = a.promptValue(reader, "Archive path (- to disable)", cfg.Storage.DBPath)
	cfg.UI.Theme = a.promptTheme(reader, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	_, _ = fmt.Fprintln(a.out, formatSuccess("\nConfiguration saved!"))
	return nil
}

func (a *App) printConfig(cfg *config.Config) {
	w := a.out
	_, _ = fmt.Fprintln(w, formatHeader("Current configuration:"))
	_, _ = fmt.Fprintln(w, "──────────────────────")
	_, _ = fmt.Fprintln(w, "[source]")
	_, _ = fmt.Fprintf(w, "  base_url            = %s\n", cfg.Source.BaseURL)
	_, _ = fmt.Fprintf(w, "  data_dir            = %s\n", cfg.Source.DataDir)
	_, _ = fmt.Fprintf(w, "  format              = %s\n", cfg.Source.Format)
	_, _ = fmt.Fprintf(w, "  timeout_seconds     = %d\n", cfg.Source.TimeoutSeconds)
	_, _ = fmt.Fprintf(w, "  requests_per_second = %g\n", cfg.Source.RequestsPerSecond)
	_, _ = fmt.Fprintln(w, "\n[storage]")
	if cfg.HasArchive() {
		_, _ = fmt.Fprintf(w, "  db_path             = %s\n", cfg.Storage.DBPath)
	} else {
		_, _ = fmt.Fprintf(w, "  db_path             = %s\n", formatMuted("(disabled)"))
	}
	_, _ = fmt.Fprintln(w, "\n[ui]")
	_, _ = fmt.Fprintf(w, "  theme               = %s\n", cfg.UI.Theme)
	_, _ = fmt.Fprintf(w, "  tick_millis         = %d\n", cfg.UI.TickMillis)
	_, _ = fmt.Fprintln(w, "\n[log]")
	_, _ = fmt.Fprintf(w, "  debug               = %t\n", cfg.Log.Debug)
	_, _ = fmt.Fprintf(w, "  path                = %s\n", cfg.Log.Path)
}

func (a *App) promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		_, _ = fmt.Fprintf(a.out, "  %s: ", label)
	} else {
		_, _ = fmt.Fprintf(a.out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	if input == "-" {
		return ""
	}
	return input
}

func (a *App) promptTheme(reader *bufio.Reader, current string) string {
	for {
		value := a.promptValue(reader, "Theme ("+strings.Join(theme.Available(), "/")+")", current)
		if theme.IsAvailable(value) {
			return strings.ToLower(value)
		}
		_, _ = fmt.Fprintln(a.out, formatWarning("  unknown theme: "+value))
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
