// Package schedule loads a conference day's talks from a raw data source.
package schedule

import (
	"context"
	"time"

	"github.com/javiermolinar/devoxx-schedule/internal/dateutil"
	"github.com/javiermolinar/devoxx-schedule/internal/talk"
)

// Source retrieves the raw document for one day ("monday".."friday").
// Sources own byte retrieval only; the Loader owns parsing.
type Source interface {
	Fetch(ctx context.Context, day string) ([]byte, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, day string) ([]byte, error)

// Fetch calls f.
func (f SourceFunc) Fetch(ctx context.Context, day string) ([]byte, error) {
	return f(ctx, day)
}

// Loader turns a weekday into an ordered list of validated talks.
type Loader struct {
	source Source
	format Format
}

// NewLoader creates a loader reading documents in format from source.
func NewLoader(source Source, format Format) *Loader {
	if format == "" {
		format = FormatStructured
	}
	return &Loader{source: source, format: format}
}

// Format returns the document format the loader expects.
func (l *Loader) Format() Format {
	return l.format
}

// Load fetches and parses the schedule for day. Weekend days load Monday.
// It either returns every talk of the day or a *LoadError; never a subset.
func (l *Loader) Load(ctx context.Context, day time.Weekday) ([]*talk.Talk, error) {
	name := dateutil.DayName(day)

	data, err := l.source.Fetch(ctx, name)
	if err != nil {
		return nil, &LoadError{Day: name, Err: err}
	}

	talks, err := Parse(l.format, data)
	if err != nil {
		return nil, &LoadError{Day: name, Err: err}
	}
	return talks, nil
}
