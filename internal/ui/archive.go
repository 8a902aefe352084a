package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/devoxx-schedule/internal/db"
)

var errNoArchive = errors.New("no archive configured; set storage.db_path")

func (a *App) archiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Show the days stored in the schedule archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.config.HasArchive() {
				return errNoArchive
			}
			store, err := db.New(a.config.Storage.DBPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			days, err := store.ListDays(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(a.out, formatHeader("Archive: "+a.config.Storage.DBPath))
			if len(days) == 0 {
				_, _ = fmt.Fprintln(a.out, "Empty. Run `devoxx-schedule sync` to fill it.")
				return nil
			}
			for _, d := range days {
				_, _ = fmt.Fprintf(a.out, "  %-10s %-10s %7d bytes  %s\n",
					d.Day, d.Format, d.Size, formatMuted("fetched "+d.FetchedAt.Local().Format(time.DateTime)))
			}
			return nil
		},
	}
}
