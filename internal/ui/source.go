package ui

import (
	"github.com/javiermolinar/devoxx-schedule/internal/db"
	"github.com/javiermolinar/devoxx-schedule/internal/schedule"
)

// openLoader builds the schedule loader for the current mode. Online reads the
// CFP API. Offline reads the archive when one is configured, otherwise the
// data directory. The returned func releases the source.
func (a *App) openLoader() (*schedule.Loader, func(), error) {
	if !a.offline {
		src, err := a.httpSource()
		if err != nil {
			return nil, nil, err
		}
		return schedule.NewLoader(src, schedule.FormatStructured), func() {}, nil
	}

	if a.config.HasArchive() {
		archive, err := db.New(a.config.Storage.DBPath)
		if err != nil {
			return nil, nil, err
		}
		// sync only archives API documents, which are structured
		return schedule.NewLoader(archive, schedule.FormatStructured), func() { _ = archive.Close() }, nil
	}

	format := a.config.ScheduleFormat()
	dir := schedule.NewDirSource(a.config.Source.DataDir, format)
	return schedule.NewLoader(dir, format), func() {}, nil
}

func (a *App) httpSource() (*schedule.HTTPSource, error) {
	return schedule.NewHTTPSource(a.config.Source.BaseURL,
		schedule.WithTimeout(a.config.Timeout()),
		schedule.WithRateLimit(a.config.Source.RequestsPerSecond),
	)
}
