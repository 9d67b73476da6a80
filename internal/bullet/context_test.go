package bullet

import (
	"context"
	"strings"
	"testing"

	"github.com/kk-code-lab/mdbullet/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveStyleDefaultsToAutomatic(t *testing.T) {
	assert.Equal(t, Automatic, ActiveStyle(context.Background()))
	//nolint:staticcheck // a nil context must still resolve
	assert.Equal(t, Automatic, ActiveStyle(nil))
}

func TestScopeRestoresPreviousStyle(t *testing.T) {
	ctx := context.Background()
	arrow := Fixed("→")

	before := ActiveStyle(ctx)
	var inside Style
	Scope(ctx, arrow, func(ctx context.Context) {
		inside = ActiveStyle(ctx)
		Scope(ctx, ASCII, func(context.Context) {})
	})

	assert.Equal(t, arrow, inside)
	assert.Equal(t, before, ActiveStyle(ctx))
}

func TestNestedScopesRestoreEnclosingStyle(t *testing.T) {
	outer := Fixed("o")
	inner := Fixed("i")

	Scope(context.Background(), outer, func(ctx context.Context) {
		Scope(ctx, inner, func(ctx context.Context) {
			assert.Equal(t, inner, ActiveStyle(ctx))
		})
		assert.Equal(t, outer, ActiveStyle(ctx))
	})
}

func TestScopeRestoresAfterPanic(t *testing.T) {
	ctx := WithStyle(context.Background(), Classic)

	func() {
		defer func() { _ = recover() }()
		Scope(ctx, Fixed("x"), func(context.Context) { panic("boom") })
	}()

	assert.Equal(t, Classic, ActiveStyle(ctx))
}

func TestWithStyleNilResetsToAutomatic(t *testing.T) {
	ctx := WithStyle(context.Background(), ASCII)
	assert.Equal(t, Automatic, ActiveStyle(WithStyle(ctx, nil)))
	assert.Equal(t, ASCII, ActiveStyle(ctx))
}

func TestLabelResolvesActiveStyle(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "• ", Label(ctx, 0))
	assert.Equal(t, "◼︎", strings.TrimSpace(Label(ctx, 2)))
	assert.Equal(t, "→", Label(WithStyle(ctx, Fixed("→")), 7))

	nilLabel := StyleFunc(func(Configuration) view.Renderable { return nil })
	assert.Equal(t, "", Label(WithStyle(ctx, nilLabel), 0))
}

// levels renders the label of each level in the active style, one per line.
type levels []int

func (l levels) Render(ctx context.Context) string {
	out := make([]string, 0, len(l))
	for _, level := range l {
		out = append(out, strings.TrimRight(Label(ctx, level), " "))
	}
	return strings.Join(out, "\n")
}

func TestApplyScopesToSubtree(t *testing.T) {
	tree := view.Stack{
		levels{0, 1, 2},
		Apply(levels{0, 1, 2}, Fixed("→")),
		levels{0},
	}

	got := strings.Split(tree.Render(context.Background()), "\n")
	require.Len(t, got, 7)
	assert.Equal(t, []string{"•", "•", "◼︎"}, got[0:3])
	assert.Equal(t, []string{"→", "→", "→"}, got[3:6])
	assert.Equal(t, "•", got[6])
}

func TestApplyNestedOverride(t *testing.T) {
	tree := Apply(view.Stack{
		levels{0},
		Apply(levels{0}, Fixed("+")),
		levels{0},
	}, Fixed("-"))

	assert.Equal(t, "-\n+\n-", tree.Render(context.Background()))
	assert.Equal(t, "", Apply(nil, ASCII).Render(context.Background()))
}
