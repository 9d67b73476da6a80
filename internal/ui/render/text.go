package render

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

func (r *Renderer) cachedRuneWidth(ru rune) int {
	if ru < 128 {
		r.runeWidthCacheMu.RLock()
		width := r.runeWidthCache[ru]
		r.runeWidthCacheMu.RUnlock()

		if width == 0 && ru != 0 {
			actualWidth := runewidth.RuneWidth(ru)
			r.runeWidthCacheMu.Lock()
			r.runeWidthCache[ru] = actualWidth + 1
			r.runeWidthCacheMu.Unlock()
			return actualWidth
		}
		return width - 1
	}

	if cached, ok := r.runeWidthWide.Load(ru); ok {
		return cached.(int)
	}

	width := runewidth.RuneWidth(ru)
	if unicode.Is(unicode.Variation_Selector, ru) {
		width = 0
	}
	r.runeWidthWide.Store(ru, width)
	return width
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.cachedRuneWidth(ru)
	}
	return width
}

func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}

	if r.measureTextWidth(text) <= maxWidth {
		return text
	}

	const ellipsis = "…"
	if maxWidth <= 1 {
		return ellipsis
	}

	available := maxWidth - 1
	var builder strings.Builder
	currentWidth := 0

	for _, ru := range text {
		runeWidth := r.cachedRuneWidth(ru)
		if currentWidth+runeWidth > available {
			break
		}
		builder.WriteRune(ru)
		currentWidth += runeWidth
	}

	builder.WriteString(ellipsis)
	return builder.String()
}

// drawTextLine draws text from startX, keeping zero-width runes (combining
// marks, variation selectors) attached to the preceding cell. It returns
// the next free column.
func (r *Renderer) drawTextLine(startX, y, maxX int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		i++

		var combc []rune
		for i < len(runes) && r.cachedRuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		w := r.cachedRuneWidth(mainc)
		if w <= 0 {
			w = 1
		}
		if x+w > maxX {
			break
		}

		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

func (r *Renderer) fillRow(y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
