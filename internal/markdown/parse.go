package markdown

import (
	"net/url"
	"strings"

	"github.com/kk-code-lab/mdbullet/internal/textutil"
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// nestingLimit bounds block and inline recursion. Deeper content is
// flattened to plain text.
const nestingLimit = 64

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

var allowedLinkSchemes = map[string]struct{}{
	"http":   {},
	"https":  {},
	"mailto": {},
	"ftp":    {},
}

// Parse reads GitHub flavored markdown. Text is sanitized for terminal
// output while converting, so the returned document is safe to print.
func Parse(src string) *Document {
	source := []byte(src)
	root := md.Parser().Parse(text.NewReader(source))
	c := converter{source: source}
	return &Document{Blocks: c.blocks(root, 0)}
}

type converter struct {
	source []byte
}

func (c converter) blocks(parent gast.Node, depth int) []Block {
	var out []Block
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if b := c.block(n, depth); b != nil {
			out = append(out, b)
		}
	}
	return out
}

func (c converter) block(n gast.Node, depth int) Block {
	if depth >= nestingLimit {
		return Paragraph{Text: []Inline{{Kind: InlineText, Literal: c.flatten(n)}}}
	}

	switch b := n.(type) {
	case *gast.Heading:
		return Heading{Level: b.Level, Text: c.inlines(b, depth)}
	case *gast.Paragraph, *gast.TextBlock:
		return Paragraph{Text: c.inlines(b, depth)}
	case *gast.FencedCodeBlock:
		return CodeBlock{Info: textutil.SanitizeTerminalText(string(b.Language(c.source))), Lines: c.codeLines(b)}
	case *gast.CodeBlock:
		return CodeBlock{Lines: c.codeLines(b)}
	case *gast.HTMLBlock:
		return CodeBlock{Info: "html", Lines: c.codeLines(b)}
	case *gast.List:
		list := List{Ordered: b.IsOrdered(), Tight: b.IsTight, Start: b.Start}
		for item := b.FirstChild(); item != nil; item = item.NextSibling() {
			list.Items = append(list.Items, ListItem{Blocks: c.blocks(item, depth+1)})
		}
		return list
	case *gast.Blockquote:
		return Blockquote{Blocks: c.blocks(b, depth+1)}
	case *gast.ThematicBreak:
		return Rule{}
	case *east.Table:
		return c.table(b, depth)
	default:
		return nil
	}
}

func (c converter) codeLines(n gast.Node) []string {
	segments := n.Lines()
	lines := make([]string, 0, segments.Len())
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		line := strings.TrimRight(string(seg.Value(c.source)), "\r\n")
		line = textutil.ExpandTabs(line, textutil.DefaultTabWidth)
		lines = append(lines, textutil.SanitizeTerminalText(line))
	}
	return lines
}

func (c converter) table(t *east.Table, depth int) Table {
	var tbl Table
	for _, a := range t.Alignments {
		switch a {
		case east.AlignLeft:
			tbl.Align = append(tbl.Align, AlignLeft)
		case east.AlignCenter:
			tbl.Align = append(tbl.Align, AlignCenter)
		case east.AlignRight:
			tbl.Align = append(tbl.Align, AlignRight)
		default:
			tbl.Align = append(tbl.Align, AlignDefault)
		}
	}
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, plainText(c.inlines(cell, depth)))
		}
		if _, ok := row.(*east.TableHeader); ok {
			tbl.Headers = cells
			continue
		}
		tbl.Rows = append(tbl.Rows, cells)
	}
	return tbl
}

func (c converter) inlines(parent gast.Node, depth int) []Inline {
	if depth >= nestingLimit {
		return []Inline{{Kind: InlineText, Literal: c.flatten(parent)}}
	}

	var out []Inline
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch t := n.(type) {
		case *gast.Text:
			if value := c.text(t); value != "" {
				out = append(out, Inline{Kind: InlineText, Literal: value})
			}
			switch {
			case t.HardLineBreak():
				out = append(out, Inline{Kind: InlineLineBreak})
			case t.SoftLineBreak():
				out = append(out, Inline{Kind: InlineText, Literal: " "})
			}
		case *gast.String:
			out = append(out, Inline{Kind: InlineText, Literal: textutil.SanitizeTerminalText(string(t.Value))})
		case *gast.Emphasis:
			kind := InlineEmphasis
			if t.Level >= 2 {
				kind = InlineStrong
			}
			out = append(out, Inline{Kind: kind, Children: c.inlines(t, depth+1)})
		case *east.Strikethrough:
			out = append(out, Inline{Kind: InlineStrike, Children: c.inlines(t, depth+1)})
		case *gast.CodeSpan:
			out = append(out, Inline{Kind: InlineCode, Literal: c.flatten(t)})
		case *gast.Link:
			out = append(out, Inline{
				Kind:        InlineLink,
				Children:    c.inlines(t, depth+1),
				Destination: linkDestination(string(t.Destination)),
			})
		case *gast.AutoLink:
			label := textutil.SanitizeTerminalText(string(t.Label(c.source)))
			out = append(out, Inline{
				Kind:        InlineLink,
				Children:    []Inline{{Kind: InlineText, Literal: label}},
				Destination: linkDestination(string(t.URL(c.source))),
			})
		case *gast.Image:
			out = append(out, Inline{
				Kind:        InlineImage,
				Literal:     c.flatten(t),
				Destination: linkDestination(string(t.Destination)),
			})
		case *gast.RawHTML:
			var b strings.Builder
			for i := 0; i < t.Segments.Len(); i++ {
				seg := t.Segments.At(i)
				b.Write(seg.Value(c.source))
			}
			out = append(out, Inline{Kind: InlineText, Literal: textutil.SanitizeTerminalText(b.String())})
		case *east.TaskCheckBox:
			out = append(out, Inline{Kind: InlineTask, Checked: t.IsChecked})
		default:
			out = append(out, c.inlines(n, depth+1)...)
		}
	}
	return out
}

func (c converter) text(t *gast.Text) string {
	value := t.Segment.Value(c.source)
	if !t.IsRaw() {
		value = util.ResolveNumericReferences(util.ResolveEntityNames(util.UnescapePunctuations(value)))
	}
	return textutil.SanitizeTerminalText(string(value))
}

// flatten collects the text below n, collapsing whitespace.
func (c converter) flatten(n gast.Node) string {
	var b strings.Builder
	_ = gast.Walk(n, func(node gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering {
			return gast.WalkContinue, nil
		}
		switch t := node.(type) {
		case *gast.Text:
			b.Write(t.Segment.Value(c.source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *gast.String:
			b.Write(t.Value)
		}
		return gast.WalkContinue, nil
	})
	return textutil.SanitizeTerminalText(strings.Join(strings.Fields(b.String()), " "))
}

func linkDestination(dest string) string {
	if safe, ok := sanitizeLinkDestination(dest); ok {
		return safe
	}
	return ""
}

// sanitizeLinkDestination keeps relative links and a small set of schemes.
// Protocol-relative URLs and anything carrying control or formatting runes
// are rejected.
func sanitizeLinkDestination(dest string) (string, bool) {
	dest = strings.TrimSpace(dest)
	if dest == "" || strings.HasPrefix(dest, "//") || textutil.HasFormattingRunes(dest) {
		return "", false
	}
	for _, r := range dest {
		if r < 0x20 || r == 0x7f {
			return "", false
		}
	}
	u, err := url.Parse(dest)
	if err != nil {
		return "", false
	}
	if u.Scheme == "" {
		return dest, true
	}
	if _, ok := allowedLinkSchemes[strings.ToLower(u.Scheme)]; !ok {
		return "", false
	}
	return dest, true
}

// plainText flattens inlines to plain text.
func plainText(inlines []Inline) string {
	var b strings.Builder
	writePlainText(&b, inlines)
	return strings.TrimSpace(b.String())
}

func writePlainText(b *strings.Builder, inlines []Inline) {
	for _, in := range inlines {
		switch in.Kind {
		case InlineLineBreak:
			b.WriteByte(' ')
		case InlineTask:
			b.WriteString(taskMarker(in.Checked))
		case InlineText, InlineCode, InlineImage:
			b.WriteString(in.Literal)
		default:
			writePlainText(b, in.Children)
		}
	}
}

func taskMarker(checked bool) string {
	if checked {
		return "[x] "
	}
	return "[ ] "
}
