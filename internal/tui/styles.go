package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/devoxx-schedule/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorBorder      lipgloss.Color
	colorTabActive   lipgloss.Color
	colorTime        lipgloss.Color
	colorWarning     lipgloss.Color
	colorError       lipgloss.Color

	// Banner
	BannerStyle lipgloss.Style

	// Panes
	PaneBorderStyle lipgloss.Style
	PaneTitleStyle  lipgloss.Style

	// Day tabs
	TabActiveStyle   lipgloss.Style
	TabInactiveStyle lipgloss.Style
	TabDividerStyle  lipgloss.Style
	OfflineStyle     lipgloss.Style

	// Schedule list
	ListItemStyle     lipgloss.Style
	ListSelectedStyle lipgloss.Style
	ListEmptyStyle    lipgloss.Style

	// Details
	DetailTitleStyle lipgloss.Style
	DetailMetaStyle  lipgloss.Style
	DetailTextStyle  lipgloss.Style

	// Search bar
	SearchStyle lipgloss.Style
	CursorStyle lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	if t == nil {
		t, _ = theme.Load("mocha")
	}
	s := &Styles{}

	s.colorBg = theme.Color(t.Bg)
	s.colorBgSelection = theme.Color(t.BgSelection)
	s.colorFg = theme.Color(t.Fg)
	s.colorFgMuted = theme.Color(t.FgMuted)
	s.colorAccent = theme.Color(t.Accent)
	s.colorBorder = theme.Color(t.Border)
	s.colorTabActive = theme.Color(t.TabActive)
	s.colorTime = theme.Color(t.Time)
	s.colorWarning = theme.Color(t.Warning)
	s.colorError = theme.Color(t.Error)

	s.BannerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent)

	s.PaneBorderStyle = lipgloss.NewStyle().
		Foreground(s.colorBorder)
	s.PaneTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent)

	s.TabActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(s.colorTabActive)
	s.TabInactiveStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)
	s.TabDividerStyle = lipgloss.NewStyle().
		Foreground(s.colorBorder)
	s.OfflineStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorWarning)

	s.ListItemStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)
	s.ListSelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorTime).
		Background(s.colorBgSelection)
	s.ListEmptyStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(s.colorFgMuted)

	s.DetailTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg)
	s.DetailMetaStyle = lipgloss.NewStyle().
		Foreground(s.colorTime)
	s.DetailTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.SearchStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning)
	s.CursorStyle = lipgloss.NewStyle().
		Reverse(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)
	s.ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorError)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	return s
}
