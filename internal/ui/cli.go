// Package ui implements the devoxx-schedule command line.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/devoxx-schedule/internal/app"
	"github.com/javiermolinar/devoxx-schedule/internal/config"
	"github.com/javiermolinar/devoxx-schedule/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config  *config.Config
	root    *cobra.Command
	offline bool // Read schedules from local disk instead of the API
	out     io.Writer
	now     func() time.Time
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, out: os.Stdout, now: time.Now}

	a.root = &cobra.Command{
		Use:   "devoxx-schedule",
		Short: "A command line tool to browse the Devoxx schedule",
		Long: `devoxx-schedule browses the Devoxx Belgium conference schedule.

It shows one day at a time, Monday to Friday, with a searchable list of
talks and the details of the selected one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd)
		},
	}

	a.root.PersistentFlags().BoolVarP(&a.offline, "offline", "o", false,
		"Uses the schedule from local disk, instead of the Devoxx API")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.syncCmd())
	a.root.AddCommand(a.archiveCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(a.out, "devoxx-schedule %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) runTUI(cmd *cobra.Command) error {
	ctx := cmd.Context()

	loader, closeSource, err := a.openLoader()
	if err != nil {
		return err
	}
	defer closeSource()

	state, err := app.NewState(ctx, loader, time.Monday, a.offline)
	if err != nil {
		return err
	}
	return tui.Run(ctx, state, a.config)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
