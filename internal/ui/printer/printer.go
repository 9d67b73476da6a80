// Package printer writes laid out markdown to a terminal or any other
// writer, styled with lipgloss and wrapped with reflow.
package printer

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kk-code-lab/mdbullet/internal/markdown"
	"github.com/kk-code-lab/mdbullet/internal/textutil"
	"github.com/kk-code-lab/mdbullet/internal/view"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/muesli/termenv"
	"go.trai.ch/zerr"
	"go.uber.org/zap"
)

// minWrapWidth is the narrowest content column wrapping will produce.
// Narrower columns are left unwrapped.
const minWrapWidth = 8

// Options configure a Printer.
type Options struct {
	// Width wraps content at this many cells; zero disables wrapping.
	Width   int
	NoColor bool
	Palette Palette
	Layout  markdown.Options
	Logger  *zap.Logger
}

// Printer renders documents to a writer.
type Printer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	theme    Theme
	opts     Options
	logger   *zap.Logger
}

// New returns a printer for out.
func New(out io.Writer, opts Options) *Printer {
	renderer := lipgloss.NewRenderer(out)
	if opts.NoColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Printer{
		out:      out,
		renderer: renderer,
		theme:    NewTheme(renderer, opts.Palette),
		opts:     opts,
		logger:   logger,
	}
}

// Print lays out doc under ctx and writes it.
func (p *Printer) Print(ctx context.Context, doc *markdown.Document) error {
	lines := markdown.Layout(ctx, doc, p.opts.Layout)
	rendered := p.Lines(lines)
	p.logger.Debug("printing document", zap.Int("lines", len(lines)), zap.Int("rows", len(rendered)))

	for _, row := range rendered {
		if _, err := io.WriteString(p.out, row+"\n"); err != nil {
			return zerr.Wrap(err, "write output")
		}
	}
	return nil
}

// Lines styles and wraps lines into output rows.
func (p *Printer) Lines(lines []markdown.Line) []string {
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, p.line(line)...)
	}
	return rows
}

func (p *Printer) line(line markdown.Line) []string {
	prefix := p.theme.Paint(line.Prefix)
	content := p.theme.Paint(line.Content)

	avail := p.opts.Width - line.PrefixWidth()
	if line.NoWrap || p.opts.Width <= 0 || avail < minWrapWidth || view.Width(content) <= avail {
		return []string{strings.TrimRight(prefix+content, " ")}
	}

	wrapped := strings.Split(wrap.String(wordwrap.String(content, avail), avail), "\n")
	hang := p.theme.Paint(continuation(line.Prefix))
	rows := make([]string, 0, len(wrapped))
	for i, part := range wrapped {
		lead := hang
		if i == 0 {
			lead = prefix
		}
		rows = append(rows, strings.TrimRight(lead+part, " "))
	}
	return rows
}

// continuation blanks a prefix for wrapped rows. Quote bars repeat, labels
// turn into spaces of the same width.
func continuation(prefix []markdown.Segment) []markdown.Segment {
	out := make([]markdown.Segment, 0, len(prefix))
	for _, seg := range prefix {
		if seg.Kind == markdown.KindQuote {
			out = append(out, seg)
			continue
		}
		out = append(out, markdown.Segment{Text: textutil.Blank(view.Width(seg.Text)), Kind: markdown.KindPlain})
	}
	return out
}
