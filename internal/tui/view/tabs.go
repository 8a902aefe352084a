package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TabsViewState holds the day tabs.
type TabsViewState struct {
	Labels        []string
	Selected      int
	Badge         string // shown right-aligned, e.g. "offline"
	ActiveStyle   lipgloss.Style
	InactiveStyle lipgloss.Style
	DividerStyle  lipgloss.Style
	BadgeStyle    lipgloss.Style
	Width         int // inner width
}

// RenderTabs renders "Monday │ Tuesday │ ..." with the selected tab highlighted.
func RenderTabs(state TabsViewState) string {
	parts := make([]string, 0, len(state.Labels))
	for i, label := range state.Labels {
		if i == state.Selected {
			parts = append(parts, state.ActiveStyle.Render(label))
			continue
		}
		parts = append(parts, state.InactiveStyle.Render(label))
	}
	line := " " + strings.Join(parts, state.DividerStyle.Render(" │ "))

	if state.Badge == "" {
		return Truncate(line, state.Width)
	}
	badge := state.BadgeStyle.Render(state.Badge) + " "
	gap := state.Width - lipgloss.Width(line) - lipgloss.Width(badge)
	if gap < 1 {
		return Truncate(line, state.Width)
	}
	return line + strings.Repeat(" ", gap) + badge
}
