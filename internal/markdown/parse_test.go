package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseBuildsBlocks(t *testing.T) {
	doc := Parse("## Head\n\n1. a\n2. b\n\n> quoted\n\n| x | y |\n|:-:|--:|\n| 1 | 2 |\n")
	if len(doc.Blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d: %#v", len(doc.Blocks), doc.Blocks)
	}

	heading, ok := doc.Blocks[0].(Heading)
	if !ok || heading.Level != 2 || plainText(heading.Text) != "Head" {
		t.Fatalf("unexpected heading %#v", doc.Blocks[0])
	}

	list, ok := doc.Blocks[1].(List)
	if !ok {
		t.Fatalf("expected list, got %T", doc.Blocks[1])
	}
	if !list.Ordered || !list.Tight || list.Start != 1 || len(list.Items) != 2 {
		t.Fatalf("unexpected list %#v", list)
	}

	if _, ok := doc.Blocks[2].(Blockquote); !ok {
		t.Fatalf("expected blockquote, got %T", doc.Blocks[2])
	}

	tbl, ok := doc.Blocks[3].(Table)
	if !ok {
		t.Fatalf("expected table, got %T", doc.Blocks[3])
	}
	want := Table{
		Headers: []string{"x", "y"},
		Rows:    [][]string{{"1", "2"}},
		Align:   []Alignment{AlignCenter, AlignRight},
	}
	if diff := cmp.Diff(want, tbl); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestParseResolvesEntitiesAndEscapes(t *testing.T) {
	doc := Parse(`a &amp; b \*c\*`)
	para, ok := doc.Blocks[0].(Paragraph)
	if !ok {
		t.Fatalf("expected paragraph, got %T", doc.Blocks[0])
	}
	if got := plainText(para.Text); got != "a & b *c*" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestParseCodeBlockExpandsTabs(t *testing.T) {
	doc := Parse("```\n\tx\n```\n")
	code, ok := doc.Blocks[0].(CodeBlock)
	if !ok {
		t.Fatalf("expected code block, got %T", doc.Blocks[0])
	}
	if diff := cmp.Diff([]string{"    x"}, code.Lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}
