package bullet

import "github.com/kk-code-lab/mdbullet/internal/view"

// LabelWidth is the nominal number of cells reserved for a default label.
// It grows with the text scale so bullets at every level stay aligned.
const LabelWidth view.Scaled = 2

// Configuration describes the list item a label is made for.
type Configuration struct {
	// Level is the zero-based nesting depth of the item.
	Level int
}

// PreferredGlyph maps the level to a glyph: 0 is FilledCircle, 1 is
// OutlineCircle, anything else (negative levels included) is Square.
func (c Configuration) PreferredGlyph() Glyph {
	switch c.Level {
	case 0:
		return FilledCircle
	case 1:
		return OutlineCircle
	default:
		return Square
	}
}

// DefaultLabel shows PreferredGlyph inside LabelWidth cells.
func (c Configuration) DefaultLabel() view.Renderable {
	return view.NewText(c.PreferredGlyph().String()).WithMinWidth(LabelWidth)
}
