package bullet

import (
	"context"
	"strconv"
	"strings"

	"github.com/kk-code-lab/mdbullet/internal/view"
	"go.trai.ch/zerr"
)

// ErrUnknownStyle is returned by Lookup for names it does not know.
var ErrUnknownStyle = zerr.New("unknown bullet style")

// FixedStyle draws the same text at every level without reserving width.
type FixedStyle struct {
	Text string
}

// Fixed returns a style whose label is always text.
func Fixed(text string) FixedStyle { return FixedStyle{Text: text} }

func (s FixedStyle) MakeLabel(Configuration) view.Renderable { return view.NewText(s.Text) }

// GlyphStyle picks a glyph per level from a table. Levels past the end of
// the table reuse its last glyph; negative levels use the last glyph too,
// matching PreferredGlyph. Labels reserve LabelWidth like the default.
type GlyphStyle struct {
	glyphs []Glyph
}

// Glyphs returns a table style. An empty table behaves like Automatic.
func Glyphs(glyphs ...Glyph) GlyphStyle {
	return GlyphStyle{glyphs: append([]Glyph(nil), glyphs...)}
}

// Glyph returns the glyph drawn for level.
func (s GlyphStyle) Glyph(level int) Glyph {
	if len(s.glyphs) == 0 {
		return Configuration{Level: level}.PreferredGlyph()
	}
	if level < 0 || level >= len(s.glyphs) {
		return s.glyphs[len(s.glyphs)-1]
	}
	return s.glyphs[level]
}

func (s GlyphStyle) MakeLabel(c Configuration) view.Renderable {
	return view.NewText(s.Glyph(c.Level).String()).WithMinWidth(LabelWidth)
}

// Padded reserves width cells for every label s makes. Labels wider than
// width are left as they are.
func Padded(s Style, width view.Metric) Style {
	if s == nil {
		s = Automatic
	}
	return StyleFunc(func(c Configuration) view.Renderable {
		inner := s.MakeLabel(c)
		return view.RenderableFunc(func(ctx context.Context) string {
			return view.NewText(inner.Render(ctx)).WithMinWidth(width).Render(ctx)
		})
	})
}

var (
	// Classic uses a distinct glyph for each of the first three levels.
	Classic = Glyphs(FilledCircle, HollowCircle, SmallSquare)
	// ASCII sticks to characters every terminal can show.
	ASCII = Glyphs("*", "-", "+")
)

// Names lists the style names Lookup accepts.
func Names() []string {
	return []string{"automatic", "classic", "ascii"}
}

// Lookup resolves a style by name. The empty name means Automatic.
func Lookup(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "automatic", "auto":
		return Automatic, nil
	case "classic":
		return Classic, nil
	case "ascii":
		return ASCII, nil
	default:
		return nil, zerr.With(zerr.Wrap(ErrUnknownStyle, "style "+strconv.Quote(name)), "style", name)
	}
}
