package app

import (
	"context"
	"fmt"

	"github.com/javiermolinar/devoxx-schedule/internal/talk"
)

// KeyType identifies a normalized key. Input adapters translate raw
// terminal input into these values.
type KeyType int

const (
	KeyRune KeyType = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab
	KeyBackTab
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyQuit // ctrl+c / ctrl+d
)

// Key is a normalized key press. Rune is set only for KeyRune.
type Key struct {
	Type KeyType
	Rune rune
}

// Rune returns a KeyRune key.
func Rune(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return string(k.Rune)
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyTab:
		return "tab"
	case KeyBackTab:
		return "shift+tab"
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	case KeyBackspace:
		return "backspace"
	case KeyQuit:
		return "quit"
	default:
		return fmt.Sprintf("key(%d)", k.Type)
	}
}

// Event is either a key press or a tick.
type Event struct {
	Tick bool
	Key  Key
}

// KeyEvent wraps a key in an Event.
func KeyEvent(k Key) Event {
	return Event{Key: k}
}

// TickEvent is the periodic timing pulse.
var TickEvent = Event{Tick: true}

// Effect describes what an applied event did, for the adapter's benefit.
type Effect struct {
	Selected   *talk.Talk // set when a talk was selected with Enter
	DayChanged bool
	ModeFrom   Mode
	ModeTo     Mode
}

// Apply runs the transition bound to ev. Reload failures are returned with
// the state left as it was; nothing else fails. Events after Quit are ignored.
func (s *State) Apply(ctx context.Context, ev Event) (Effect, error) {
	eff := Effect{ModeFrom: s.mode, ModeTo: s.mode}
	if s.shouldQuit {
		return eff, nil
	}
	if ev.Tick {
		s.Tick()
		return eff, nil
	}

	err := s.applyKey(ctx, ev.Key, &eff)
	eff.ModeTo = s.mode
	return eff, err
}

func (s *State) applyKey(ctx context.Context, k Key, eff *Effect) error {
	switch k.Type {
	case KeyQuit:
		s.Quit()
	case KeyTab, KeyRight:
		return s.changeDay(ctx, s.NextTab, eff)
	case KeyBackTab, KeyLeft:
		return s.changeDay(ctx, s.PreviousTab, eff)
	case KeyDown:
		s.NextItem()
	case KeyUp:
		s.PreviousItem()
	case KeyEsc:
		s.Cancel()
	case KeyEnter:
		if s.mode == ModeSearch {
			s.Confirm()
			return nil
		}
		if t, ok := s.Select(); ok {
			eff.Selected = t
		}
	case KeyBackspace:
		s.Backspace()
	case KeyRune:
		return s.applyRune(ctx, k.Rune, eff)
	}
	return nil
}

// applyRune types into the search bar in Search mode and treats a few
// runes as commands otherwise.
func (s *State) applyRune(ctx context.Context, r rune, eff *Effect) error {
	if s.mode == ModeSearch {
		s.TextInput(r)
		return nil
	}

	switch r {
	case '/':
		s.EnterSearch()
	case 'q':
		s.Quit()
	case 'j':
		s.NextItem()
	case 'k':
		s.PreviousItem()
	case 'l':
		return s.changeDay(ctx, s.NextTab, eff)
	case 'h':
		return s.changeDay(ctx, s.PreviousTab, eff)
	case 'r':
		return s.changeDay(ctx, s.Reload, eff)
	}
	return nil
}

func (s *State) changeDay(ctx context.Context, step func(context.Context) error, eff *Effect) error {
	if err := step(ctx); err != nil {
		return err
	}
	eff.DayChanged = true
	return nil
}
