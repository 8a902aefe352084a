// Package talk defines the core domain types for devoxx-schedule.
package talk

import (
	"strings"
	"time"
	_ "time/tzdata" // talks carry IANA zone ids; don't depend on the host zoneinfo
)

// timeLayout is the display format for local talk times.
const timeLayout = "15:04"

// Speaker is a person presenting a talk.
type Speaker struct {
	ID        int
	FirstName string
	LastName  string
	Company   *string // optional
}

// FullName returns "first last", trimming whichever part is missing.
func (s Speaker) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Talk is one scheduled conference session. Values are built by FromRecord or
// FromLine and are never mutated afterwards.
type Talk struct {
	Title       *string // optional
	Description *string // optional
	Tags        []string
	Room        string
	Start       time.Time // in Location
	End         time.Time // in Location
	SessionType *string // optional
	Speakers    []Speaker
	Location    *time.Location
}

// DisplayTitle returns the title, falling back to the session type name.
func (t *Talk) DisplayTitle() string {
	if t.Title != nil {
		return *t.Title
	}
	if t.SessionType != nil {
		return *t.SessionType
	}
	return ""
}

// DisplayDescription returns the description or an empty string.
func (t *Talk) DisplayDescription() string {
	if t.Description != nil {
		return *t.Description
	}
	return ""
}

// SpeakerNames joins the speakers' full names with ", ".
func (t *Talk) SpeakerNames() string {
	if len(t.Speakers) == 0 {
		return ""
	}
	names := make([]string, 0, len(t.Speakers))
	for _, s := range t.Speakers {
		names = append(names, s.FullName())
	}
	return strings.Join(names, ", ")
}

// LocalStart formats the start time in the talk's own timezone.
func (t *Talk) LocalStart() string {
	return t.Start.In(t.location()).Format(timeLayout)
}

// LocalEnd formats the end time in the talk's own timezone.
func (t *Talk) LocalEnd() string {
	return t.End.In(t.location()).Format(timeLayout)
}

// TimeRange returns "HH:MM - HH:MM", or just the start when both are equal.
func (t *Talk) TimeRange() string {
	if t.Start.Equal(t.End) {
		return t.LocalStart()
	}
	return t.LocalStart() + " - " + t.LocalEnd()
}

// Duration returns the length of the talk.
func (t *Talk) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// ListLabel is the line shown for the talk in the schedule list.
func (t *Talk) ListLabel() string {
	return t.LocalStart() + "  " + t.DisplayTitle()
}

func (t *Talk) location() *time.Location {
	if t.Location == nil {
		return time.UTC
	}
	return t.Location
}
