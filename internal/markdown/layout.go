package markdown

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/kk-code-lab/mdbullet/internal/bullet"
	"github.com/kk-code-lab/mdbullet/internal/textutil"
	"github.com/kk-code-lab/mdbullet/internal/view"
)

const (
	quoteBar         = "│ "
	codeIndent       = "    "
	defaultRuleWidth = 3
)

// Options tune the layout walk.
type Options struct {
	// QuoteStyle, when set, is the bullet style used inside blockquotes.
	QuoteStyle bullet.Style
	// RuleWidth is the width of thematic breaks in cells.
	RuleWidth int
}

// Layout walks doc and produces output lines. Unordered list labels come
// from the bullet style active in ctx at the point each list is reached.
func Layout(ctx context.Context, doc *Document, opts Options) []Line {
	if doc == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	l := layouter{opts: opts}
	return l.blocks(ctx, doc.Blocks, 0, true)
}

type layouter struct {
	opts Options
}

func (l layouter) blocks(ctx context.Context, blocks []Block, depth int, separate bool) []Line {
	var lines []Line
	for idx, block := range blocks {
		rendered := l.block(ctx, block, depth)
		if separate && idx > 0 && len(rendered) > 0 && len(lines) > 0 && !lines[len(lines)-1].Empty() {
			lines = append(lines, Line{})
		}
		lines = append(lines, rendered...)
	}
	return lines
}

func (l layouter) block(ctx context.Context, block Block, depth int) []Line {
	switch b := block.(type) {
	case Heading:
		level := b.Level
		if level < 1 {
			level = 1
		}
		return []Line{{
			Prefix:  []Segment{{Text: strings.Repeat("#", level) + " ", Kind: KindHeading}},
			Content: inlineSegments(b.Text, KindHeading),
		}}
	case Paragraph:
		return paragraphLines(b.Text)
	case CodeBlock:
		return codeBlockLines(b)
	case List:
		return l.list(ctx, b, depth)
	case Blockquote:
		return l.blockquote(ctx, b, depth)
	case Rule:
		width := l.opts.RuleWidth
		if width <= 0 {
			width = defaultRuleWidth
		}
		return []Line{{Content: []Segment{{Text: strings.Repeat("─", width), Kind: KindRule}}, NoWrap: true}}
	case Table:
		return tableLines(b)
	default:
		return nil
	}
}

// list lays out one list at the given nesting level. Every item body hangs
// under its label, so nested lists indent by exactly one label width.
func (l layouter) list(ctx context.Context, list List, depth int) []Line {
	var lines []Line
	for idx, item := range list.Items {
		marker := Segment{Kind: KindBullet}
		if list.Ordered {
			marker = Segment{Text: strconv.Itoa(list.Start+idx) + ".", Kind: KindMarker}
		} else {
			marker.Text = bullet.Label(ctx, depth)
		}
		marker.Text = withGap(marker.Text)
		hang := Segment{Text: textutil.Blank(view.Width(marker.Text)), Kind: KindPlain}

		body := l.blocks(ctx, item.Blocks, depth+1, !list.Tight)
		if len(body) == 0 {
			lines = append(lines, Line{Prefix: []Segment{marker}})
			continue
		}
		for i, line := range body {
			if line.Empty() {
				lines = append(lines, line)
				continue
			}
			lead := hang
			if i == 0 {
				lead = marker
			}
			line.Prefix = prepend(lead, line.Prefix)
			lines = append(lines, line)
		}
	}
	return lines
}

func (l layouter) blockquote(ctx context.Context, q Blockquote, depth int) []Line {
	if l.opts.QuoteStyle != nil {
		ctx = bullet.WithStyle(ctx, l.opts.QuoteStyle)
	}
	content := l.blocks(ctx, q.Blocks, depth, true)
	for i := range content {
		content[i].Prefix = prepend(Segment{Text: quoteBar, Kind: KindQuote}, content[i].Prefix)
	}
	return content
}

// withGap makes sure a label is followed by whitespace. Labels that already
// reserve trailing room are kept as they are.
func withGap(label string) string {
	plain := ansi.Strip(label)
	if plain == "" || strings.HasSuffix(plain, " ") {
		return label
	}
	return label + " "
}

func paragraphLines(inlines []Inline) []Line {
	var lines []Line
	var current []Segment

	flush := func() {
		lines = append(lines, Line{Content: current})
		current = nil
	}

	for _, inline := range inlines {
		if inline.Kind == InlineLineBreak {
			flush()
			continue
		}
		current = append(current, inlineSegments([]Inline{inline}, KindPlain)...)
	}
	flush()
	return lines
}

func inlineSegments(inlines []Inline, base Kind) []Segment {
	var segments []Segment
	for _, inline := range inlines {
		switch inline.Kind {
		case InlineText:
			segments = append(segments, Segment{Text: inline.Literal, Kind: base})
		case InlineEmphasis:
			segments = append(segments, inlineSegments(inline.Children, KindEmphasis)...)
		case InlineStrong:
			segments = append(segments, inlineSegments(inline.Children, KindStrong)...)
		case InlineStrike:
			segments = append(segments, inlineSegments(inline.Children, KindStrike)...)
		case InlineCode:
			segments = append(segments, Segment{Text: inline.Literal, Kind: KindCode})
		case InlineTask:
			segments = append(segments, Segment{Text: taskMarker(inline.Checked), Kind: KindMarker})
		case InlineLineBreak:
			segments = append(segments, Segment{Text: " ", Kind: base})
		case InlineLink:
			label := inlineSegments(inline.Children, KindLink)
			segments = append(segments, label...)
			if inline.Destination != "" && inline.Destination != joinSegments(label) {
				segments = append(segments, destinationSegments(inline.Destination)...)
			}
		case InlineImage:
			alt := inline.Literal
			if alt == "" {
				alt = "image"
			}
			segments = append(segments, Segment{Text: "[" + alt + "]", Kind: base})
			if inline.Destination != "" {
				segments = append(segments, destinationSegments(inline.Destination)...)
			}
		}
	}
	return segments
}

func destinationSegments(dest string) []Segment {
	return []Segment{
		{Text: " (", Kind: KindPlain},
		{Text: dest, Kind: KindLink},
		{Text: ")", Kind: KindPlain},
	}
}

func codeBlockLines(block CodeBlock) []Line {
	if len(block.Lines) == 0 {
		return nil
	}
	prefix := []Segment{{Text: codeIndent, Kind: KindCodeBlock}}
	lines := make([]Line, 0, len(block.Lines)+1)
	if block.Info != "" {
		lines = append(lines, Line{Prefix: prefix, Content: []Segment{{Text: "[" + block.Info + "]", Kind: KindCode}}, NoWrap: true})
	}
	for _, line := range block.Lines {
		lines = append(lines, Line{Prefix: prefix, Content: []Segment{{Text: line, Kind: KindCodeBlock}}, NoWrap: true})
	}
	return lines
}
