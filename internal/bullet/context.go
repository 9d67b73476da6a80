package bullet

import (
	"context"

	"github.com/kk-code-lab/mdbullet/internal/view"
)

type styleKey struct{}

// ActiveStyle returns the innermost style set on ctx, or Automatic.
func ActiveStyle(ctx context.Context) Style {
	if ctx == nil {
		return Automatic
	}
	if s, ok := ctx.Value(styleKey{}).(Style); ok && s != nil {
		return s
	}
	return Automatic
}

// WithStyle returns a child of ctx in which s is the active style. ctx
// itself is not changed, so code still holding it keeps the old style.
// A nil s puts Automatic back for the subtree.
func WithStyle(ctx context.Context, s Style) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if s == nil {
		s = Automatic
	}
	return context.WithValue(ctx, styleKey{}, s)
}

// Scope runs body with s as the active style. Once body returns the
// caller's ctx is the same as before, whatever body did.
func Scope(ctx context.Context, s Style, body func(ctx context.Context)) {
	body(WithStyle(ctx, s))
}

// Apply wraps content so that it, and everything it renders, uses s
// unless a nested Apply overrides it again.
func Apply(content view.Renderable, s Style) view.Renderable {
	return styled{content: content, style: s}
}

type styled struct {
	content view.Renderable
	style   Style
}

func (n styled) Render(ctx context.Context) string {
	if n.content == nil {
		return ""
	}
	return n.content.Render(WithStyle(ctx, n.style))
}

// Label resolves the active style on ctx for one level and renders it.
func Label(ctx context.Context, level int) string {
	label := ActiveStyle(ctx).MakeLabel(Configuration{Level: level})
	if label == nil {
		return ""
	}
	return label.Render(ctx)
}
