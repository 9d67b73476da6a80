package printer

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/kk-code-lab/mdbullet/internal/bullet"
	"go.trai.ch/zerr"
	"go.uber.org/zap"
)

const defaultGlamourWidth = 80

// Glamour renders src with glamour instead of the native layout. Glamour
// has a single list prefix for every level, so it uses the active style's
// top level label.
func (p *Printer) Glamour(ctx context.Context, src string) (string, error) {
	cfg := styles.DarkStyleConfig
	if p.opts.NoColor {
		cfg = styles.NoTTYStyleConfig
	}
	cfg.Item.BlockPrefix = itemPrefix(ctx)

	width := p.opts.Width
	if width <= 0 {
		width = defaultGlamourWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(cfg),
		glamour.WithColorProfile(p.renderer.ColorProfile()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", zerr.Wrap(err, "create glamour renderer")
	}
	out, err := r.Render(src)
	if err != nil {
		return "", zerr.Wrap(err, "glamour render")
	}
	return out, nil
}

// PrintGlamour renders src with Glamour and writes the result.
func (p *Printer) PrintGlamour(ctx context.Context, src string) error {
	out, err := p.Glamour(ctx, src)
	if err != nil {
		return err
	}
	p.logger.Debug("printing document with glamour", zap.Int("bytes", len(out)))
	if _, err := io.WriteString(p.out, out); err != nil {
		return zerr.Wrap(err, "write output")
	}
	return nil
}

func itemPrefix(ctx context.Context) string {
	label := strings.TrimRight(ansi.Strip(bullet.Label(ctx, 0)), " ")
	if label == "" {
		return ""
	}
	return label + " "
}
