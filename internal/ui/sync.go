package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/devoxx-schedule/internal/dateutil"
	"github.com/javiermolinar/devoxx-schedule/internal/db"
	"github.com/javiermolinar/devoxx-schedule/internal/schedule"
)

// errSyncOffline is returned when sync is asked to run without the API.
var errSyncOffline = errors.New("sync downloads from the Devoxx API and cannot run offline")

// dayDocument is one downloaded and validated day.
type dayDocument struct {
	day   string
	body  []byte
	talks int
}

func (a *App) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Download the schedule for offline use",
		Long: `Download all five conference days from the Devoxx API.

Every day is validated before anything is written. The documents are
stored as <data_dir>/<day>.json and, when storage.db_path is set, in
the schedule archive as well.`,
		Example: `  devoxx-schedule sync
  devoxx-schedule --offline`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.offline {
				return errSyncOffline
			}
			src, err := a.httpSource()
			if err != nil {
				return err
			}
			return a.sync(cmd.Context(), src)
		},
	}
}

// sync downloads every workday from src and stores them. Nothing is written
// unless all days parse.
func (a *App) sync(ctx context.Context, src schedule.Source) error {
	docs := make([]dayDocument, 0, len(dateutil.Workdays))
	for _, d := range dateutil.Workdays {
		name := dateutil.DayName(d)
		body, err := src.Fetch(ctx, name)
		if err != nil {
			return &schedule.LoadError{Day: name, Err: err}
		}
		talks, err := schedule.ParseStructured(body)
		if err != nil {
			return &schedule.LoadError{Day: name, Err: err}
		}
		docs = append(docs, dayDocument{day: name, body: body, talks: len(talks)})
	}

	dir := schedule.NewDirSource(a.config.Source.DataDir, schedule.FormatStructured)
	for _, doc := range docs {
		if err := dir.Save(doc.day, doc.body); err != nil {
			return err
		}
	}

	if a.config.HasArchive() {
		if err := a.archive(ctx, docs); err != nil {
			return err
		}
	}

	for _, doc := range docs {
		_, _ = fmt.Fprintf(a.out, "  %-10s %s\n", doc.day, formatSuccess(fmt.Sprintf("%d talks", doc.talks)))
	}
	_, _ = fmt.Fprintf(a.out, "\nSaved to %s\n", formatMuted(a.config.Source.DataDir))
	if a.config.HasArchive() {
		_, _ = fmt.Fprintf(a.out, "Archived in %s\n", formatMuted(a.config.Storage.DBPath))
	}
	return nil
}

func (a *App) archive(ctx context.Context, docs []dayDocument) error {
	store, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	fetchedAt := a.now()
	for _, doc := range docs {
		if err := store.SaveDay(ctx, doc.day, schedule.FormatStructured, doc.body, fetchedAt); err != nil {
			return err
		}
	}
	return nil
}
