package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bannerLines spell DEVOXX.
var bannerLines = []string{
	` ____  _______     _____  __  ____  __`,
	`|  _ \| ____\ \   / / _ \ \ \/ /\ \/ /`,
	`| | | |  _|  \ \ / / | | | \  /  \  / `,
	`| |_| | |___  \ V /| |_| | /  \  /  \ `,
	`|____/|_____|  \_/  \___/ /_/\_\/_/\_\`,
}

// BannerHeight is the number of lines RenderBanner produces.
var BannerHeight = len(bannerLines)

// RenderBanner renders the banner cut to width.
func RenderBanner(width int, style lipgloss.Style) string {
	lines := make([]string, 0, len(bannerLines))
	for _, l := range bannerLines {
		lines = append(lines, style.Render(PadRight(l, width)))
	}
	return strings.Join(lines, "\n")
}
