package printer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kk-code-lab/mdbullet/internal/markdown"
)

// Palette holds the configured colours. Values are lipgloss colour
// strings ("212", "#ff8800"); empty means the terminal default.
type Palette struct {
	Bullet  string
	Heading string
	Code    string
	Link    string
	Quote   string
	Rule    string
}

// DefaultPalette returns the built-in colour scheme.
func DefaultPalette() Palette {
	return Palette{
		Bullet:  "212",
		Heading: "39",
		Code:    "44",
		Link:    "33",
		Quote:   "244",
		Rule:    "240",
	}
}

// Theme maps segment kinds to lipgloss styles.
type Theme struct {
	styles map[markdown.Kind]lipgloss.Style
	plain  lipgloss.Style
}

// NewTheme builds styles for r from p.
func NewTheme(r *lipgloss.Renderer, p Palette) Theme {
	base := r.NewStyle()
	return Theme{
		plain: base,
		styles: map[markdown.Kind]lipgloss.Style{
			markdown.KindEmphasis:  base.Italic(true),
			markdown.KindStrong:    base.Bold(true),
			markdown.KindStrike:    base.Strikethrough(true),
			markdown.KindCode:      base.Foreground(color(p.Code)),
			markdown.KindCodeBlock: base.Foreground(color(p.Code)),
			markdown.KindLink:      base.Foreground(color(p.Link)).Underline(true),
			markdown.KindHeading:   base.Foreground(color(p.Heading)).Bold(true),
			markdown.KindRule:      base.Foreground(color(p.Rule)),
			markdown.KindBullet:    base.Foreground(color(p.Bullet)),
			markdown.KindMarker:    base.Foreground(color(p.Bullet)),
			markdown.KindQuote:     base.Foreground(color(p.Quote)),
		},
	}
}

// Style returns the style for kind. Unknown kinds render plain.
func (t Theme) Style(kind markdown.Kind) lipgloss.Style {
	if style, ok := t.styles[kind]; ok {
		return style
	}
	return t.plain
}

// Paint renders segments with their styles.
func (t Theme) Paint(segments []markdown.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Text == "" {
			continue
		}
		if seg.Kind == markdown.KindPlain || strings.TrimSpace(seg.Text) == "" {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(t.Style(seg.Kind).Render(seg.Text))
	}
	return b.String()
}

func color(value string) lipgloss.TerminalColor {
	if value == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(value)
}
