package markdown

import (
	"strings"

	"github.com/kk-code-lab/mdbullet/internal/view"
)

// Kind describes the semantic style of a laid out segment.
type Kind int

const (
	KindPlain Kind = iota
	KindEmphasis
	KindStrong
	KindStrike
	KindCode
	KindCodeBlock
	KindLink
	KindHeading
	KindRule
	KindBullet
	KindMarker
	KindQuote
	KindTable
)

// Segment is a chunk of text with an associated kind.
type Segment struct {
	Text string
	Kind Kind
}

// Line is one output row. Prefix holds list labels, hanging indents and
// quote bars; wrapped continuation rows repeat its width as blank space.
// NoWrap lines (code, rules, tables) are never wrapped.
type Line struct {
	Prefix  []Segment
	Content []Segment
	NoWrap  bool
}

// Empty reports whether the line carries no text at all.
func (l Line) Empty() bool {
	return len(l.Prefix) == 0 && len(l.Content) == 0
}

// PrefixText returns the concatenated prefix.
func (l Line) PrefixText() string { return joinSegments(l.Prefix) }

// PrefixWidth is the display width of the prefix in cells.
func (l Line) PrefixWidth() int { return view.Width(l.PrefixText()) }

// Text returns prefix and content as one plain string.
func (l Line) Text() string {
	return l.PrefixText() + joinSegments(l.Content)
}

// Plain converts lines to plain strings with trailing blanks trimmed.
func Plain(lines []Line) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimRight(line.Text(), " ")
	}
	return out
}

func joinSegments(segments []Segment) string {
	if len(segments) == 0 {
		return ""
	}
	total := 0
	for _, seg := range segments {
		total += len(seg.Text)
	}
	buf := make([]byte, 0, total)
	for _, seg := range segments {
		buf = append(buf, seg.Text...)
	}
	return string(buf)
}

func prepend(seg Segment, segments []Segment) []Segment {
	out := make([]Segment, 0, len(segments)+1)
	out = append(out, seg)
	return append(out, segments...)
}
