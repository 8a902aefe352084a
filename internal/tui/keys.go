package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/devoxx-schedule/internal/app"
)

// KeyMap defines the key bindings shown in the help line. The state machine
// decides what each key does in the current mode; TranslateKey only
// normalizes terminal input.
type KeyMap struct {
	NextDay key.Binding
	PrevDay key.Binding
	Down    key.Binding
	Up      key.Binding
	Select  key.Binding
	Search  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Reload  key.Binding
	Copy    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	NextDay: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab/→", "next day"),
	),
	PrevDay: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("S-tab/←", "prev day"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/↓", "down"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("k/↑", "up"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "ctrl+d"),
		key.WithHelp("q", "quit"),
	),
}

// HelpKeyMap adapts KeyMap to help.KeyMap for one mode.
type HelpKeyMap struct {
	bindings []key.Binding
}

func (h HelpKeyMap) ShortHelp() []key.Binding { return h.bindings }

func (h HelpKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{h.bindings} }

// HelpFor returns the bindings worth showing in mode.
func (k KeyMap) HelpFor(mode app.Mode) HelpKeyMap {
	switch mode {
	case app.ModeSearch:
		return HelpKeyMap{bindings: []key.Binding{k.Confirm, k.Cancel, k.NextDay, k.Down, k.Up}}
	case app.ModeFiltered:
		return HelpKeyMap{bindings: []key.Binding{k.Search, k.Cancel, k.NextDay, k.Down, k.Select, k.Copy, k.Quit}}
	default:
		return HelpKeyMap{bindings: []key.Binding{k.NextDay, k.PrevDay, k.Down, k.Up, k.Search, k.Select, k.Reload, k.Copy, k.Quit}}
	}
}

// TranslateKey normalizes a bubbletea key message into state machine keys.
// Pasted text yields one key per rune. Alt-modified keys and keys the
// state machine has no use for yield nothing.
func TranslateKey(msg tea.KeyMsg) []app.Key {
	if msg.Alt {
		return nil
	}

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		return []app.Key{{Type: app.KeyQuit}}
	case tea.KeyUp:
		return []app.Key{{Type: app.KeyUp}}
	case tea.KeyDown:
		return []app.Key{{Type: app.KeyDown}}
	case tea.KeyLeft:
		return []app.Key{{Type: app.KeyLeft}}
	case tea.KeyRight:
		return []app.Key{{Type: app.KeyRight}}
	case tea.KeyTab:
		return []app.Key{{Type: app.KeyTab}}
	case tea.KeyShiftTab:
		return []app.Key{{Type: app.KeyBackTab}}
	case tea.KeyEnter:
		return []app.Key{{Type: app.KeyEnter}}
	case tea.KeyEsc:
		return []app.Key{{Type: app.KeyEsc}}
	case tea.KeyBackspace:
		return []app.Key{{Type: app.KeyBackspace}}
	case tea.KeySpace:
		return []app.Key{app.Rune(' ')}
	case tea.KeyRunes:
		keys := make([]app.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, app.Rune(r))
		}
		return keys
	}
	return nil
}
