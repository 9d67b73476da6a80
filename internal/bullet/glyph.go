// Package bullet resolves the marker drawn in front of unordered list
// items. A Style turns a Configuration (the item's nesting level) into a
// label; the active style travels down a render walk inside a
// context.Context and can be replaced for any subtree.
package bullet

// Glyph is the display string of a bullet. Any string is accepted,
// including empty and multi-rune ones; two glyphs are equal when their
// strings are.
type Glyph string

// OutlineCircle has the same string as FilledCircle, so
// levels 0 and 1 look alike under Automatic. Use HollowCircle (or the
// Classic style) for a visibly different second level.
const (
	FilledCircle  Glyph = "•"
	OutlineCircle Glyph = "•"
	Square        Glyph = "◼︎"

	HollowCircle Glyph = "◦"
	SmallSquare  Glyph = "▪"
)

func (g Glyph) String() string { return string(g) }
