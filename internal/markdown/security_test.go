package markdown

import (
	"context"
	"strings"
	"testing"
)

func TestSanitizeLinkDestinationBlocksUnsafeSchemes(t *testing.T) {
	if _, ok := sanitizeLinkDestination("javascript:alert(1)"); ok {
		t.Fatalf("expected javascript scheme to be rejected")
	}
	if _, ok := sanitizeLinkDestination("//example.com"); ok {
		t.Fatalf("expected protocol-relative link to be rejected")
	}
	if _, ok := sanitizeLinkDestination("http://example.com/path"); !ok {
		t.Fatalf("expected http link to be allowed")
	}
	if _, ok := sanitizeLinkDestination("mailto:test@example.com"); !ok {
		t.Fatalf("expected mailto link to be allowed")
	}
	if _, ok := sanitizeLinkDestination("docs/readme.md#usage"); !ok {
		t.Fatalf("expected relative link to be allowed")
	}
	poison := "http://example.com/" + string(rune(0x202E))
	if _, ok := sanitizeLinkDestination(poison); ok {
		t.Fatalf("expected formatting control runes to be rejected")
	}
}

func TestParseDropsUnsafeLinkDestination(t *testing.T) {
	doc := Parse("[click](javascript:alert(1))")
	got := strings.Join(Plain(Layout(context.Background(), doc, Options{})), "\n")
	if got != "click" {
		t.Fatalf("expected destination to be dropped, got %q", got)
	}
}

func TestParseSanitizesControlSequences(t *testing.T) {
	doc := Parse("- bad\x1b[31m")
	got := strings.Join(Plain(Layout(context.Background(), doc, Options{})), "\n")
	if strings.ContainsRune(got, 0x1b) {
		t.Fatalf("escape byte leaked into output: %q", got)
	}
}

func TestParseFlattensDeepNesting(t *testing.T) {
	src := strings.Repeat(">", nestingLimit+16) + " deep"
	lines := Plain(Layout(context.Background(), Parse(src), Options{}))
	if len(lines) == 0 {
		t.Fatalf("expected output for deeply nested quote")
	}
	last := lines[len(lines)-1]
	if !strings.HasSuffix(last, "deep") {
		t.Fatalf("expected nested text to survive, got %q", last)
	}
	if bars := strings.Count(last, "│"); bars > nestingLimit {
		t.Fatalf("expected at most %d quote bars, got %d", nestingLimit, bars)
	}
}
