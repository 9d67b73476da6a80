// Package view holds the small renderable tree the markdown host is built
// from. A Renderable turns itself into terminal text; environment values
// such as the text scale travel in the context handed to Render.
package view

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderable is a displayable unit.
type Renderable interface {
	Render(ctx context.Context) string
}

// RenderableFunc adapts a function to Renderable.
type RenderableFunc func(ctx context.Context) string

func (f RenderableFunc) Render(ctx context.Context) string { return f(ctx) }

// Text is a leaf that shows Content left aligned inside at least MinWidth
// cells. Content wider than the minimum is never truncated.
type Text struct {
	Content  string
	MinWidth Metric
}

// NewText returns a Text without a width constraint.
func NewText(content string) Text {
	return Text{Content: content}
}

// WithMinWidth returns a copy of t that reserves m cells.
func (t Text) WithMinWidth(m Metric) Text {
	t.MinWidth = m
	return t
}

func (t Text) Render(ctx context.Context) string {
	reserved := 0
	if t.MinWidth != nil {
		reserved = t.MinWidth.Resolve(ctx)
	}
	if reserved <= 0 || Width(t.Content) >= reserved {
		return t.Content
	}
	return lipgloss.NewStyle().Width(reserved).Render(t.Content)
}

// Stack renders children top to bottom. Each child gets the same context,
// so an override applied to one child never leaks into its siblings.
type Stack []Renderable

func (s Stack) Render(ctx context.Context) string {
	parts := make([]string, 0, len(s))
	for _, child := range s {
		if child == nil {
			continue
		}
		parts = append(parts, child.Render(ctx))
	}
	return strings.Join(parts, "\n")
}

// Width reports the widest line of s in terminal cells, ignoring ANSI
// escape sequences.
func Width(s string) int {
	return lipgloss.Width(s)
}
