package tui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/devoxx-schedule/internal/app"
	"github.com/javiermolinar/devoxx-schedule/internal/config"
	"github.com/javiermolinar/devoxx-schedule/internal/schedule"
)

var errUnreachable = errors.New("host unreachable")

// testHarness holds a model plus the fakes it was built with.
type testHarness struct {
	model   Model
	now     time.Time
	copied  []string
	copyErr error
}

func useASCII(t *testing.T) {
	t.Helper()
	prevProfile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prevProfile)
	})
}

// newHarness builds a model on the fixture schedule. Days listed in
// failing return errUnreachable.
func newHarness(t *testing.T, width, height int, failing ...string) *testHarness {
	t.Helper()

	dir := schedule.NewDirSource(filepath.Join("..", "schedule", "testdata"), schedule.FormatStructured)
	source := schedule.SourceFunc(func(ctx context.Context, day string) ([]byte, error) {
		for _, f := range failing {
			if f == day {
				return nil, errUnreachable
			}
		}
		return dir.Fetch(ctx, day)
	})
	state, err := app.NewState(context.Background(), schedule.NewLoader(source, schedule.FormatStructured), time.Monday, true)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}

	h := &testHarness{now: time.Date(2019, 11, 4, 9, 0, 0, 0, time.UTC)}
	h.model = New(state, config.Default(),
		WithClock(func() time.Time { return h.now }),
		WithClipboard(func(s string) error {
			if h.copyErr != nil {
				return h.copyErr
			}
			h.copied = append(h.copied, s)
			return nil
		}),
	)
	h.send(t, tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

// send runs msg through Update and returns the command it produced.
func (h *testHarness) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	updated, cmd := h.model.Update(msg)
	m, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	h.model = m
	return cmd
}

func (h *testHarness) typeKeys(t *testing.T, msgs ...tea.KeyMsg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		cmd = h.send(t, msg)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}
