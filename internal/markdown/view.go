package markdown

import (
	"context"
	"strings"

	"github.com/kk-code-lab/mdbullet/internal/view"
)

// View exposes doc as a plain text renderable. Bullet labels are resolved
// against the context it is rendered in, so the result composes with
// bullet.Apply.
func View(doc *Document, opts Options) view.Renderable {
	return view.RenderableFunc(func(ctx context.Context) string {
		return strings.Join(Plain(Layout(ctx, doc, opts)), "\n")
	})
}
