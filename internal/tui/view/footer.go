package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterViewState holds the two bottom lines: the search or status line,
// then the help line.
type FooterViewState struct {
	Width         int
	SearchVisible bool
	SearchText    string // includes the prompt
	CursorVisible bool
	CursorColumn  int
	StatusLine    string
	StatusIsError bool
	HelpLine      string
	SearchStyle   lipgloss.Style
	CursorStyle   lipgloss.Style
	StatusStyle   lipgloss.Style
	ErrorStyle    lipgloss.Style
	HelpStyle     lipgloss.Style
}

// FooterHeight is the number of lines RenderFooter produces.
const FooterHeight = 2

// RenderFooter renders the status message above the help line. While the
// search bar is visible it takes the bottom row and the help line moves up
// unless a status message is showing.
func RenderFooter(state FooterViewState) string {
	status := ""
	if state.StatusLine != "" {
		style := state.StatusStyle
		if state.StatusIsError {
			style = state.ErrorStyle
		}
		status = style.Render(Truncate(state.StatusLine, state.Width))
	}

	help := state.HelpStyle.Render(Truncate(state.HelpLine, state.Width))
	if !state.SearchVisible {
		return PadRight(status, state.Width) + "\n" + PadRight(help, state.Width)
	}
	if status == "" {
		status = help
	}
	return PadRight(status, state.Width) + "\n" + PadRight(renderSearchBar(state), state.Width)
}

// renderSearchBar draws the search text with a block cursor at CursorColumn.
func renderSearchBar(state FooterViewState) string {
	text := []rune(state.SearchText)
	if !state.CursorVisible {
		return state.SearchStyle.Render(Truncate(string(text), state.Width))
	}

	col := state.CursorColumn
	if col > len(text) {
		col = len(text)
	}
	var b strings.Builder
	b.WriteString(state.SearchStyle.Render(string(text[:col])))
	under := " "
	rest := ""
	if col < len(text) {
		under = string(text[col])
		rest = string(text[col+1:])
	}
	b.WriteString(state.CursorStyle.Render(under))
	b.WriteString(state.SearchStyle.Render(rest))
	return Truncate(b.String(), state.Width)
}
