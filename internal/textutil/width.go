package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is the tab stop used when code blocks are laid out.
const DefaultTabWidth = 4

// DisplayWidth reports the printable width of plain text in terminal cells.
// Zero-width runes count as one cell so cursor math never stalls.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			w = 1
		}
		width += w
	}
	return width
}

// Blank returns width spaces, or "" for non-positive widths.
func Blank(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", width)
}

// ExpandTabs replaces tab characters with spaces, honoring column width of
// the runes before each tab.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var b strings.Builder
	column := 0
	for _, ru := range text {
		if ru == '\t' {
			spaces := tabWidth - (column % tabWidth)
			b.WriteString(Blank(spaces))
			column += spaces
			continue
		}
		b.WriteRune(ru)
		w := runewidth.RuneWidth(ru)
		if w < 1 {
			w = 1
		}
		column += w
	}
	return b.String()
}
