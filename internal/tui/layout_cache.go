package tui

import "github.com/javiermolinar/devoxx-schedule/internal/tui/view"

// Layout heights that do not depend on the window size.
const (
	tabsPaneH = 3 // border, tabs, border
	paneFrame = 2 // top and bottom border

	// bannerMinHeight is the smallest terminal that still shows the banner.
	bannerMinHeight = 30
)

// LayoutCache stores layout dimensions derived from the window size.
type LayoutCache struct {
	Width  int
	Height int

	BannerH int
	TabsH   int
	BodyH   int
	FooterH int

	ListW   int // outer width of the schedule pane
	DetailW int // outer width of the details pane
}

// ListRows is the number of visible rows in the schedule pane.
func (l LayoutCache) ListRows() int {
	return max(l.BodyH-paneFrame, 0)
}

// DetailRows is the number of visible rows in the details pane.
func (l LayoutCache) DetailRows() int {
	return max(l.BodyH-paneFrame, 0)
}

func buildLayoutCache(width, height int) LayoutCache {
	l := LayoutCache{
		Width:   width,
		Height:  height,
		TabsH:   tabsPaneH,
		FooterH: view.FooterHeight,
	}
	if height >= bannerMinHeight {
		l.BannerH = view.BannerHeight
	}

	l.BodyH = height - l.BannerH - l.TabsH - l.FooterH
	if l.BodyH < paneFrame {
		l.BodyH = paneFrame
	}

	// The schedule list gets two fifths of the width.
	l.ListW = width * 2 / 5
	if l.ListW < 24 && width >= 48 {
		l.ListW = 24
	}
	l.DetailW = width - l.ListW
	return l
}
