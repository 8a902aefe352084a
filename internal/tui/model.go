// Package tui provides the terminal user interface for devoxx-schedule.
package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/devoxx-schedule/internal/app"
	"github.com/javiermolinar/devoxx-schedule/internal/config"
	"github.com/javiermolinar/devoxx-schedule/internal/tui/theme"
)

// How long status messages stay on screen.
const (
	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

// tickMsg is the periodic timing pulse.
type tickMsg time.Time

// Model is the main TUI model. It owns no schedule state of its own: it
// feeds translated keys to the state machine and draws its projection.
type Model struct {
	// Dependencies
	state  *app.State
	config *config.Config
	ctx    context.Context

	// Theme and styles
	theme  *theme.Theme
	styles *Styles
	keys   KeyMap
	help   help.Model

	// Terminal dimensions and layout
	width  int
	height int
	layout LayoutCache

	// Messages
	statusMsg  string    // Temporary status/error message
	statusErr  bool      // Render statusMsg as an error
	statusTime time.Time // When to clear message

	tick    time.Duration
	nowFunc func() time.Time
	copy    func(string) error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClock overrides the clock used for status expiry.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.nowFunc = now
	}
}

// WithClipboard overrides the clipboard writer.
func WithClipboard(write func(string) error) ModelOption {
	return func(m *Model) {
		m.copy = write
	}
}

// WithContext sets the context passed to schedule loads.
func WithContext(ctx context.Context) ModelOption {
	return func(m *Model) {
		m.ctx = ctx
	}
}

// New creates a new TUI model around an initialized state.
func New(state *app.State, cfg *config.Config, opts ...ModelOption) Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	h := help.New()
	h.ShortSeparator = " · "
	h.Styles.ShortKey = styles.HelpStyle.Bold(true)
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle

	tick := cfg.TickInterval()
	if tick <= 0 {
		tick = 250 * time.Millisecond
	}

	m := Model{
		state:   state,
		config:  cfg,
		ctx:     context.Background(),
		theme:   t,
		styles:  styles,
		keys:    DefaultKeyMap,
		help:    h,
		tick:    tick,
		nowFunc: time.Now,
		copy:    clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// State returns the underlying state machine.
func (m Model) State() *app.State {
	return m.state
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusErr = false
	m.statusTime = m.nowFunc().Add(statusDuration)
}

func (m *Model) setError(msg string) {
	m.statusMsg = msg
	m.statusErr = true
	m.statusTime = m.nowFunc().Add(errorDuration)
}

// Run starts the TUI on an initialized state and blocks until it quits.
func Run(ctx context.Context, state *app.State, cfg *config.Config) error {
	if err := InitDebugLogger(cfg.Log.Debug, cfg.Log.Path); err != nil {
		return err
	}
	defer CloseDebugLogger()
	LogDayChange(state)

	model := New(state, cfg, WithContext(ctx))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		LogError("run", err)
	}
	return err
}
