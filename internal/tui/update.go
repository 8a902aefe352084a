package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/devoxx-schedule/internal/app"
	"github.com/javiermolinar/devoxx-schedule/internal/talk"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = buildLayoutCache(m.width, m.height)
		return m, nil

	case tickMsg:
		if _, err := m.state.Apply(m.ctx, app.TickEvent); err != nil {
			LogError("tick", err)
		}
		if m.statusMsg != "" && m.nowFunc().After(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg.String(), m.state.Mode())

	// Copy is a TUI-only action; in Search "y" is text.
	if m.state.Mode() != app.ModeSearch && key.Matches(msg, m.keys.Copy) {
		m.copySelected()
		return m, nil
	}

	for _, k := range TranslateKey(msg) {
		m.applyKey(k)
		if m.state.ShouldQuit() {
			return m, tea.Quit
		}
	}
	return m, nil
}

// applyKey feeds one key to the state machine and reports the outcome.
func (m *Model) applyKey(k app.Key) {
	eff, err := m.state.Apply(m.ctx, app.KeyEvent(k))
	LogModeChange(eff.ModeFrom, eff.ModeTo, k.String())
	if err != nil {
		// The state kept the previous day; tell the user and carry on.
		LogReloadFailed(m.state, err)
		m.setError(fmt.Sprintf("Error: %v", err))
		return
	}
	if eff.DayChanged {
		LogDayChange(m.state)
		m.statusMsg = ""
	}
	if eff.Selected != nil {
		m.setStatus("Selected: " + eff.Selected.DisplayTitle())
	}
}

// copySelected puts a plain-text summary of the selected talk on the clipboard.
func (m *Model) copySelected() {
	t, ok := m.state.SelectedTalk()
	if !ok {
		m.setStatus("Nothing to copy")
		return
	}
	if err := m.copy(talkSummary(t)); err != nil {
		LogError("clipboard", err)
		m.setError(fmt.Sprintf("Copy failed: %v", err))
		return
	}
	m.setStatus("Copied: " + t.DisplayTitle())
}

// talkSummary formats a talk for the clipboard.
func talkSummary(t *talk.Talk) string {
	var b strings.Builder
	b.WriteString(t.DisplayTitle())
	b.WriteString("\n")
	b.WriteString(t.Start.Format("Monday"))
	b.WriteString(" ")
	b.WriteString(t.TimeRange())
	if t.Room != "" {
		b.WriteString(", ")
		b.WriteString(t.Room)
	}
	if names := t.SpeakerNames(); names != "" {
		b.WriteString("\n")
		b.WriteString(names)
	}
	if desc := t.DisplayDescription(); desc != "" {
		b.WriteString("\n\n")
		b.WriteString(desc)
	}
	return b.String()
}
