package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/devoxx-schedule/internal/app"
	"github.com/javiermolinar/devoxx-schedule/internal/tui/view"
)

// Pane titles.
const (
	tabsTitle   = "Day"
	listTitle   = "Schedule"
	detailTitle = "Details"
)

// View renders the TUI from the state machine's render model.
func (m Model) View() string {
	return view.Render(view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(app.Project(m.state)),
		EmptyPlaceholder: "Loading...",
	})
}

func (m Model) renderAppContent(rm app.RenderModel) string {
	layout := m.layout
	if layout.Width < view.MinWidth || layout.Height < view.MinHeight {
		return ""
	}

	sections := make([]string, 0, 4)
	if layout.BannerH > 0 {
		sections = append(sections, view.RenderBanner(layout.Width, m.styles.BannerStyle))
	}
	sections = append(sections, m.renderTabs(rm, layout))
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderList(rm, layout),
		m.renderDetail(rm, layout),
	))
	sections = append(sections, m.renderFooter(rm, layout))

	return strings.Join(sections, "\n")
}

func (m Model) renderTabs(rm app.RenderModel, layout LayoutCache) string {
	badge := ""
	if rm.Offline {
		badge = "offline"
	}
	tabs := view.RenderTabs(view.TabsViewState{
		Labels:        rm.Tabs.Labels[:],
		Selected:      rm.Tabs.Selected,
		Badge:         badge,
		ActiveStyle:   m.styles.TabActiveStyle,
		InactiveStyle: m.styles.TabInactiveStyle,
		DividerStyle:  m.styles.TabDividerStyle,
		BadgeStyle:    m.styles.OfflineStyle,
		Width:         layout.Width - 2,
	})
	return view.RenderPane(view.PaneViewState{
		Title:       tabsTitle,
		Body:        []string{tabs},
		Width:       layout.Width,
		Height:      layout.TabsH,
		BorderStyle: m.styles.PaneBorderStyle,
		TitleStyle:  m.styles.PaneTitleStyle,
	})
}

func (m Model) renderList(rm app.RenderModel, layout LayoutCache) string {
	title := listTitle
	if rm.SearchBar.Visible {
		title = fmt.Sprintf("%s (%d/%d)", listTitle, rm.Count, rm.Total)
	}
	lines := view.ListLines(view.ListViewState{
		Items:         rm.List.Items,
		Selected:      rm.List.Selected,
		Empty:         rm.List.Empty,
		Width:         layout.ListW - 2,
		Height:        layout.ListRows(),
		ItemStyle:     m.styles.ListItemStyle,
		SelectedStyle: m.styles.ListSelectedStyle,
		EmptyStyle:    m.styles.ListEmptyStyle,
	})
	return view.RenderPane(view.PaneViewState{
		Title:       title,
		Body:        lines,
		Width:       layout.ListW,
		Height:      layout.BodyH,
		BorderStyle: m.styles.PaneBorderStyle,
		TitleStyle:  m.styles.PaneTitleStyle,
	})
}

func (m Model) renderDetail(rm app.RenderModel, layout LayoutCache) string {
	textStyle := m.styles.DetailTextStyle
	if rm.Detail.Title == "" {
		textStyle = m.styles.ListEmptyStyle
	}
	lines := view.DetailLines(view.DetailViewState{
		Title:      rm.Detail.Title,
		Meta:       rm.Detail.Meta,
		Text:       rm.Detail.Text,
		Width:      layout.DetailW - 4,
		Height:     layout.DetailRows(),
		TitleStyle: m.styles.DetailTitleStyle,
		MetaStyle:  m.styles.DetailMetaStyle,
		TextStyle:  textStyle,
	})
	// One column of padding on each side inside the border.
	for i, l := range lines {
		lines[i] = " " + l
	}
	return view.RenderPane(view.PaneViewState{
		Title:       detailTitle,
		Body:        lines,
		Width:       layout.DetailW,
		Height:      layout.BodyH,
		BorderStyle: m.styles.PaneBorderStyle,
		TitleStyle:  m.styles.PaneTitleStyle,
	})
}

func (m Model) renderFooter(rm app.RenderModel, layout LayoutCache) string {
	return view.RenderFooter(view.FooterViewState{
		Width:         layout.Width,
		SearchVisible: rm.SearchBar.Visible,
		SearchText:    rm.SearchBar.Text,
		CursorVisible: rm.Cursor.Visible,
		CursorColumn:  rm.Cursor.Column,
		StatusLine:    m.statusMsg,
		StatusIsError: m.statusErr,
		HelpLine:      m.help.View(m.keys.HelpFor(rm.Mode)),
		SearchStyle:   m.styles.SearchStyle,
		CursorStyle:   m.styles.CursorStyle,
		StatusStyle:   m.styles.StatusStyle,
		ErrorStyle:    m.styles.ErrorStyle,
		HelpStyle:     m.styles.HelpStyle,
	})
}
