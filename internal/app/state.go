// Package app holds the schedule browser's state machine: the selected day,
// its talks, the selection cursor, the interaction mode and the search text.
// It is owned by a single event loop and needs no locking.
package app

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/javiermolinar/devoxx-schedule/internal/dateutil"
	"github.com/javiermolinar/devoxx-schedule/internal/talk"
)

// Mode is the current interaction mode.
type Mode int

const (
	ModeNormal   Mode = iota
	ModeSearch        // typing into the search bar
	ModeFiltered      // search confirmed; list stays filtered, text is read-only
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeSearch:
		return "Search"
	case ModeFiltered:
		return "Filtered"
	default:
		return "Unknown"
	}
}

// DayLoader loads the talks of one day. schedule.Loader implements it.
type DayLoader interface {
	Load(ctx context.Context, day time.Weekday) ([]*talk.Talk, error)
}

// noSelection marks an empty filtered view.
const noSelection = -1

// State is the application state. Create it with NewState.
type State struct {
	loader DayLoader

	day        time.Weekday
	talks      []*talk.Talk
	selected   int // index into Filtered(), noSelection when it is empty
	mode       Mode
	searchText string
	shouldQuit bool
	offline    bool
}

// NewState loads the talks of day and returns the initial state.
// A load failure here is fatal for the caller: there is no prior state to keep.
func NewState(ctx context.Context, loader DayLoader, day time.Weekday, offline bool) (*State, error) {
	day = dateutil.Normalize(day)
	talks, err := loader.Load(ctx, day)
	if err != nil {
		return nil, err
	}

	s := &State{
		loader:  loader,
		day:     day,
		talks:   talks,
		mode:    ModeNormal,
		offline: offline,
	}
	s.resetSelection()
	return s, nil
}

// Day returns the current day.
func (s *State) Day() time.Weekday { return s.day }

// Talks returns every talk of the current day. Callers must not modify it.
func (s *State) Talks() []*talk.Talk { return s.talks }

// Mode returns the interaction mode.
func (s *State) Mode() Mode { return s.mode }

// SearchText returns the current search text.
func (s *State) SearchText() string { return s.searchText }

// ShouldQuit reports whether Quit was applied.
func (s *State) ShouldQuit() bool { return s.shouldQuit }

// Offline reports whether the state was started against offline data.
func (s *State) Offline() bool { return s.offline }

// Selected returns the selected index into Filtered().
func (s *State) Selected() (int, bool) {
	if s.selected == noSelection {
		return 0, false
	}
	return s.selected, true
}

// SelectedTalk returns the talk under the cursor.
func (s *State) SelectedTalk() (*talk.Talk, bool) {
	view := s.Filtered()
	if s.selected < 0 || s.selected >= len(view) {
		return nil, false
	}
	return view[s.selected], true
}

// Filtered returns the talks whose display title contains the search text
// (case-sensitive). An empty search text returns every talk.
func (s *State) Filtered() []*talk.Talk {
	if s.searchText == "" {
		return s.talks
	}
	view := make([]*talk.Talk, 0, len(s.talks))
	for _, t := range s.talks {
		if strings.Contains(t.DisplayTitle(), s.searchText) {
			view = append(view, t)
		}
	}
	return view
}

// NextTab moves to the next day (Friday wraps to Monday) and reloads.
func (s *State) NextTab(ctx context.Context) error {
	return s.setDay(ctx, dateutil.NextWorkday(s.day))
}

// PreviousTab moves to the previous day (Monday wraps to Friday) and reloads.
func (s *State) PreviousTab(ctx context.Context) error {
	return s.setDay(ctx, dateutil.PrevWorkday(s.day))
}

// Reload reloads the current day.
func (s *State) Reload(ctx context.Context) error {
	return s.setDay(ctx, s.day)
}

// setDay swaps in the talks of day. On failure nothing changes: day, talks,
// selection and mode keep their previous values and the error is returned.
func (s *State) setDay(ctx context.Context, day time.Weekday) error {
	talks, err := s.loader.Load(ctx, day)
	if err != nil {
		return err
	}
	s.day = day
	s.talks = talks
	s.resetSelection()
	return nil
}

// NextItem moves the cursor down, wrapping to the top.
func (s *State) NextItem() {
	n := len(s.Filtered())
	if n == 0 {
		s.selected = noSelection
		return
	}
	if s.selected < 0 || s.selected >= n {
		s.selected = 0
		return
	}
	s.selected = (s.selected + 1) % n
}

// PreviousItem moves the cursor up, wrapping to the bottom.
func (s *State) PreviousItem() {
	n := len(s.Filtered())
	if n == 0 {
		s.selected = noSelection
		return
	}
	if s.selected < 0 || s.selected >= n {
		s.selected = 0
		return
	}
	s.selected = (s.selected + n - 1) % n
}

// EnterSearch switches to Search. From Normal the search text starts empty;
// from Filtered the confirmed text becomes editable again.
func (s *State) EnterSearch() {
	switch s.mode {
	case ModeNormal:
		s.searchText = ""
		s.mode = ModeSearch
		s.clampSelection()
	case ModeFiltered:
		s.mode = ModeSearch
	}
}

// TextInput appends r to the search text. Only valid in Search.
func (s *State) TextInput(r rune) {
	if s.mode != ModeSearch {
		return
	}
	s.searchText += string(r)
	s.resetSelection()
}

// Backspace removes the last rune of the search text. Only valid in Search.
func (s *State) Backspace() {
	if s.mode != ModeSearch || s.searchText == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.searchText)
	s.searchText = s.searchText[:len(s.searchText)-size]
	s.resetSelection()
}

// Confirm freezes the current search: Search becomes Filtered.
func (s *State) Confirm() {
	if s.mode == ModeSearch {
		s.mode = ModeFiltered
	}
}

// Cancel clears the search and returns to Normal.
func (s *State) Cancel() {
	s.searchText = ""
	s.mode = ModeNormal
	s.resetSelection()
}

// Select returns the talk under the cursor. It does not change the state.
// Nothing is selected while typing a search.
func (s *State) Select() (*talk.Talk, bool) {
	if s.mode == ModeSearch {
		return nil, false
	}
	return s.SelectedTalk()
}

// Quit marks the state as finished; later events are ignored.
func (s *State) Quit() {
	s.shouldQuit = true
}

// Tick is the periodic timing pulse. It currently leaves the state unchanged.
func (s *State) Tick() {}

// resetSelection points at the first talk of the filtered view, or nothing.
func (s *State) resetSelection() {
	if len(s.Filtered()) == 0 {
		s.selected = noSelection
		return
	}
	s.selected = 0
}

// clampSelection keeps a still-valid selection and repairs an invalid one.
func (s *State) clampSelection() {
	n := len(s.Filtered())
	if n == 0 {
		s.selected = noSelection
		return
	}
	if s.selected < 0 || s.selected >= n {
		s.selected = 0
	}
}
