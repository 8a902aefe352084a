package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HighlightSymbol marks the selected row of the schedule list.
const HighlightSymbol = "> "

// ListViewState holds the schedule list.
type ListViewState struct {
	Items         []string
	Selected      int // -1 for none
	Empty         string
	Width         int // inner width
	Height        int // visible rows
	ItemStyle     lipgloss.Style
	SelectedStyle lipgloss.Style
	EmptyStyle    lipgloss.Style
}

// ListOffset returns the first visible row so that selected stays on screen.
func ListOffset(selected, count, height int) int {
	if height <= 0 || count <= height || selected < height {
		return 0
	}
	offset := selected - height + 1
	if last := count - height; offset > last {
		offset = last
	}
	return offset
}

// ListLines renders the visible rows of the list.
func ListLines(state ListViewState) []string {
	if state.Height <= 0 {
		return nil
	}
	if len(state.Items) == 0 {
		return []string{state.EmptyStyle.Render(Truncate(" "+state.Empty, state.Width))}
	}

	pad := len(HighlightSymbol)
	offset := ListOffset(state.Selected, len(state.Items), state.Height)
	end := offset + state.Height
	if end > len(state.Items) {
		end = len(state.Items)
	}

	lines := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		if i == state.Selected {
			row := PadRight(HighlightSymbol+state.Items[i], state.Width)
			lines = append(lines, state.SelectedStyle.Render(row))
			continue
		}
		row := Truncate(strings.Repeat(" ", pad)+state.Items[i], state.Width)
		lines = append(lines, state.ItemStyle.Render(row))
	}
	return lines
}
