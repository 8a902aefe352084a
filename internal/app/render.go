package app

import (
	"strings"
	"unicode/utf8"

	"github.com/javiermolinar/devoxx-schedule/internal/dateutil"
)

// SearchPrompt precedes the search text in the search bar.
const SearchPrompt = "/"

// Placeholders shown when there is nothing to display.
const (
	DetailPlaceholder = "Select a talk to see its details."
	EmptyDay          = "No talks scheduled."
	EmptySearch       = "No talks match the search."
)

// RenderModel is everything a rendering adapter may read. It is plain data
// with no styling and no reference back to the State.
type RenderModel struct {
	Tabs      Tabs
	List      List
	Detail    Detail
	SearchBar SearchBar
	Cursor    Cursor

	Mode    Mode
	Offline bool
	Count   int // talks in the filtered view
	Total   int // talks in the day
}

// Tabs are the five day labels and the active one.
type Tabs struct {
	Labels   [5]string
	Selected int
}

// List is the filtered talk list. Selected is -1 when nothing is selected.
type List struct {
	Items    []string
	Selected int
	Empty    string // message to show when Items is empty
}

// Detail describes the selected talk.
type Detail struct {
	Title string
	Meta  []string // time and room, session type, speakers, tags
	Text  string   // the description, or a placeholder when nothing is selected
}

// SearchBar is the bottom line; Text includes the prompt.
type SearchBar struct {
	Visible bool
	Text    string
}

// Cursor is the text cursor on the bottom row of the screen.
// Column is zero-based and sits just after the search text.
type Cursor struct {
	Visible bool
	Column  int
}

// Project derives the render model from s. It is deterministic and does
// not modify s.
func Project(s *State) RenderModel {
	view := s.Filtered()

	rm := RenderModel{
		Mode:    s.mode,
		Offline: s.offline,
		Count:   len(view),
		Total:   len(s.talks),
	}

	for i, d := range dateutil.Workdays {
		rm.Tabs.Labels[i] = dateutil.Label(d)
	}
	rm.Tabs.Selected = dateutil.Index(s.day)

	rm.List.Items = make([]string, 0, len(view))
	for _, t := range view {
		rm.List.Items = append(rm.List.Items, t.ListLabel())
	}
	rm.List.Selected = -1
	if idx, ok := s.Selected(); ok && idx < len(view) {
		rm.List.Selected = idx
	}
	if len(view) == 0 {
		rm.List.Empty = EmptyDay
		if s.searchText != "" {
			rm.List.Empty = EmptySearch
		}
	}

	rm.Detail = projectDetail(s)

	if s.mode == ModeSearch || s.mode == ModeFiltered {
		rm.SearchBar = SearchBar{Visible: true, Text: SearchPrompt + s.searchText}
	}
	rm.Cursor = Cursor{
		Visible: s.mode == ModeSearch,
		Column:  utf8.RuneCountInString(SearchPrompt) + utf8.RuneCountInString(s.searchText),
	}

	return rm
}

func projectDetail(s *State) Detail {
	t, ok := s.SelectedTalk()
	if !ok {
		return Detail{Text: DetailPlaceholder}
	}

	d := Detail{
		Title: t.DisplayTitle(),
		Text:  t.DisplayDescription(),
	}

	when := t.TimeRange()
	if t.Room != "" {
		when += " · " + t.Room
	}
	d.Meta = append(d.Meta, when)
	if t.SessionType != nil && *t.SessionType != d.Title {
		d.Meta = append(d.Meta, *t.SessionType)
	}
	if names := t.SpeakerNames(); names != "" {
		d.Meta = append(d.Meta, "Speakers: "+names)
	}
	if len(t.Tags) > 0 {
		d.Meta = append(d.Meta, "Tags: "+strings.Join(t.Tags, ", "))
	}
	return d
}
