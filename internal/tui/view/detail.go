package view

import "github.com/charmbracelet/lipgloss"

// DetailViewState holds the details of the selected talk.
type DetailViewState struct {
	Title      string
	Meta       []string
	Text       string
	Width      int // inner width
	Height     int
	TitleStyle lipgloss.Style
	MetaStyle  lipgloss.Style
	TextStyle  lipgloss.Style
}

// DetailLines renders the title, metadata and wrapped description.
func DetailLines(state DetailViewState) []string {
	if state.Height <= 0 || state.Width <= 0 {
		return nil
	}

	var lines []string
	if state.Title != "" {
		for _, l := range Wrap(state.Title, state.Width) {
			lines = append(lines, state.TitleStyle.Render(l))
		}
	}
	for _, m := range state.Meta {
		lines = append(lines, state.MetaStyle.Render(Truncate(m, state.Width)))
	}
	if len(lines) > 0 && state.Text != "" {
		lines = append(lines, "")
	}
	for _, l := range Wrap(state.Text, state.Width) {
		lines = append(lines, state.TextStyle.Render(l))
	}

	if len(lines) > state.Height {
		lines = lines[:state.Height]
		lines[state.Height-1] = state.TextStyle.Render(Ellipsis)
	}
	return lines
}
