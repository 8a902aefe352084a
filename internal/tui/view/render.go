// Package view provides view composition helpers for the TUI.
package view

// Minimum terminal size the layout can draw into.
const (
	MinWidth  = 40
	MinHeight = 12
)

// ViewState contains pre-rendered content and the terminal size.
type ViewState struct {
	Width            int
	Height           int
	BaseContent      string
	EmptyPlaceholder string
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}
	if state.Width < MinWidth || state.Height < MinHeight {
		return "Terminal too small"
	}
	return state.BaseContent
}
