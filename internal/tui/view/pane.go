package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PaneViewState holds what is needed to draw one titled, bordered pane.
type PaneViewState struct {
	Title       string
	Body        []string // already styled; one entry per line
	Width       int      // outer width including borders
	Height      int      // outer height including borders
	BorderStyle lipgloss.Style
	TitleStyle  lipgloss.Style
}

// RenderPane draws a rounded box with the title set into the top border:
//
//	╭─ Schedule ─────╮
//	│ body           │
//	╰────────────────╯
func RenderPane(state PaneViewState) string {
	if state.Width < 4 || state.Height < 2 {
		return ""
	}
	b := lipgloss.RoundedBorder()
	innerW := state.Width - 2
	innerH := state.Height - 2

	title := ""
	if state.Title != "" && innerW > 4 {
		title = Truncate(state.Title, innerW-4)
	}
	titled := topTitle(title, state.TitleStyle)
	fill := innerW - 1 - lipgloss.Width(titled)
	if fill < 0 {
		fill = 0
	}

	lines := make([]string, 0, state.Height)
	lines = append(lines,
		state.BorderStyle.Render(b.TopLeft+b.Top)+
			titled+
			state.BorderStyle.Render(strings.Repeat(b.Top, fill)+b.TopRight))

	for _, line := range FitLines(state.Body, innerH) {
		lines = append(lines,
			state.BorderStyle.Render(b.Left)+
				PadRight(line, innerW)+
				state.BorderStyle.Render(b.Right))
	}

	lines = append(lines,
		state.BorderStyle.Render(b.BottomLeft+strings.Repeat(b.Bottom, innerW)+b.BottomRight))
	return strings.Join(lines, "\n")
}

func topTitle(title string, style lipgloss.Style) string {
	if title == "" {
		return ""
	}
	return " " + style.Render(title) + " "
}
