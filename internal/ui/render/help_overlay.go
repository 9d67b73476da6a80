package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

var helpOverlaySections = []helpOverlaySection{
	{
		title: "Scrolling",
		entries: []helpOverlayEntry{
			{keys: "↑/↓ or k/j", desc: "Scroll one line"},
			{keys: "PgUp/PgDn", desc: "Scroll one page"},
			{keys: "space / b", desc: "Page down / up"},
			{keys: "g / Home", desc: "Go to top"},
			{keys: "G / End", desc: "Go to bottom"},
		},
	},
	{
		title: "Find",
		entries: []helpOverlayEntry{
			{keys: "/", desc: "Find text"},
			{keys: "n / N", desc: "Next / previous match"},
			{keys: "Esc", desc: "Clear find"},
		},
	},
	{
		title: "Exit",
		entries: []helpOverlayEntry{
			{keys: "q / Esc", desc: "Quit"},
			{keys: "Ctrl+C", desc: "Quit immediately"},
			{keys: "?", desc: "Close this help"},
		},
	},
}

func buildHelpOverlayLines() []string {
	lines := make([]string, 0, 24)
	for i, section := range helpOverlaySections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}
	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	return fmt.Sprintf("  %-14s %s", entry.keys, entry.desc)
}

func (r *Renderer) drawHelpOverlay(w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		r.fillRow(y, w, baseStyle)
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	titleStart := 0
	if titleWidth := r.measureTextWidth(title); w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w, title, headerStyle)

	row := 2
	for _, line := range buildHelpOverlayLines() {
		if row >= h-1 {
			break
		}
		text := r.truncateTextToWidth(strings.TrimRight(line, " "), w-4)
		r.drawTextLine(2, row, w-2, text, baseStyle)
		row++
	}

	if h > 0 {
		r.drawTextLine(0, h-1, w, r.truncateTextToWidth("? toggle · Esc/q close", w), headerStyle)
	}
}
