package render

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mdbullet/internal/markdown"
	statepkg "github.com/kk-code-lab/mdbullet/internal/state"
	"github.com/kk-code-lab/mdbullet/internal/textutil"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// SetTheme replaces the color theme.
func (r *Renderer) SetTheme(theme ColorTheme) {
	r.theme = theme
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.ViewState) {
	r.screen.Clear()
	w, h := r.screen.Size()

	if state != nil && state.HelpVisible {
		r.drawHelpOverlay(w, h)
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)
	r.drawDocument(state, w)
	r.drawStatusLine(state, w, h)
	r.screen.Show()
}

func (r *Renderer) drawHeader(state *statepkg.ViewState, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	r.fillRow(0, w, style)

	title := "mdbullet"
	if state != nil && state.Title != "" {
		title = textutil.SanitizeTerminalText(state.Title)
	}
	r.drawTextLine(1, 0, w, r.truncateTextToWidth(title, w-2), style)
}

func (r *Renderer) drawDocument(state *statepkg.ViewState, w int) {
	if state == nil {
		return
	}
	base := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	current := state.CurrentMatch()

	for row := 0; row < state.VisibleLines(); row++ {
		idx := state.ScrollOffset + row
		if idx >= len(state.Lines) {
			break
		}
		y := row + 1
		line := state.Lines[idx]

		lineBase := base
		if idx == current {
			lineBase = base.Background(r.theme.MatchBg).Foreground(r.theme.MatchFg)
			r.fillRow(y, w, lineBase)
		}

		x := 0
		for _, seg := range line.Prefix {
			x = r.drawTextLine(x, y, w, ansi.Strip(seg.Text), r.styleForSegment(lineBase, seg.Kind, idx == current))
		}
		for _, seg := range line.Content {
			x = r.drawTextLine(x, y, w, ansi.Strip(seg.Text), r.styleForSegment(lineBase, seg.Kind, idx == current))
		}
	}
}

func (r *Renderer) drawStatusLine(state *statepkg.ViewState, w, h int) {
	if h < 2 {
		return
	}
	y := h - 1
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	r.fillRow(y, w, style)

	position := positionText(state)
	left := buildFooterHelpText(state)
	if state != nil && state.FindActive {
		left = "/" + textutil.SanitizeTerminalText(state.FindQuery)
	}

	avail := w - r.measureTextWidth(position) - 1
	r.drawTextLine(0, y, w, r.truncateTextToWidth(left, avail), style)
	if posX := w - r.measureTextWidth(position); posX > 0 {
		r.drawTextLine(posX, y, w, position, style.Dim(true))
	}
}

func positionText(state *statepkg.ViewState) string {
	if state == nil || len(state.Lines) == 0 {
		return "empty "
	}
	last := state.ScrollOffset + state.VisibleLines()
	if last > len(state.Lines) {
		last = len(state.Lines)
	}
	percent := last * 100 / len(state.Lines)
	text := fmt.Sprintf("%d-%d/%d %d%% ", state.ScrollOffset+1, last, len(state.Lines), percent)
	if len(state.Matches) > 0 {
		text = fmt.Sprintf("match %d/%d  %s", state.MatchIndex+1, len(state.Matches), text)
	}
	return text
}

func (r *Renderer) styleForSegment(base tcell.Style, kind markdown.Kind, highlighted bool) tcell.Style {
	switch kind {
	case markdown.KindStrong:
		return base.Bold(true)
	case markdown.KindHeading:
		return r.foreground(base.Bold(true), r.theme.HeadingFg, highlighted)
	case markdown.KindEmphasis:
		return base.Italic(true)
	case markdown.KindStrike:
		return base.StrikeThrough(true)
	case markdown.KindCode:
		return r.foreground(base, r.theme.CodeFg, highlighted).Dim(false)
	case markdown.KindCodeBlock:
		style := r.foreground(base, r.theme.CodeBlockFg, highlighted)
		if !highlighted && r.theme.CodeBlockBg != tcell.ColorDefault {
			style = style.Background(r.theme.CodeBlockBg)
		}
		return style.Dim(false)
	case markdown.KindLink:
		return r.foreground(base.Underline(true), r.theme.LinkFg, highlighted)
	case markdown.KindBullet, markdown.KindMarker:
		return r.foreground(base, r.theme.BulletFg, highlighted)
	case markdown.KindQuote:
		return r.foreground(base, r.theme.QuoteFg, highlighted)
	case markdown.KindRule:
		return r.foreground(base, r.theme.RuleFg, highlighted).Dim(true)
	default:
		return base
	}
}

// foreground applies fg unless the line is highlighted as the current match.
func (r *Renderer) foreground(style tcell.Style, fg tcell.Color, highlighted bool) tcell.Style {
	if highlighted || fg == tcell.ColorDefault {
		return style
	}
	return style.Foreground(fg)
}
